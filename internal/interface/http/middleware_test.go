package http

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/astropredict-web/internal/infra/astroapi"
	"github.com/yanqian/astropredict-web/internal/infra/config"
	apperrors "github.com/yanqian/astropredict-web/pkg/errors"
)

func TestIPRateLimiter(t *testing.T) {
	limiter := newIPRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 2})
	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	require.True(t, limiter.allow("10.0.0.1"))
	require.True(t, limiter.allow("10.0.0.1"))
	require.False(t, limiter.allow("10.0.0.1"))
	require.True(t, limiter.allow("10.0.0.2"), "buckets are per address")

	now = now.Add(time.Second)
	require.True(t, limiter.allow("10.0.0.1"))

	now = now.Add(10 * time.Minute)
	limiter.allow("10.0.0.3")
	require.NotContains(t, limiter.visitors, "10.0.0.1")
}

func TestResolveOrigin(t *testing.T) {
	require.Equal(t, "*", resolveOrigin("https://a.test", nil))
	require.Equal(t, "https://b.test", resolveOrigin("https://b.test", []string{"https://a.test", "https://b.test"}))
	require.Equal(t, "https://a.test", resolveOrigin("https://evil.test", []string{"https://a.test"}))
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperrors.Wrap("invalid_input", "bad", nil), http.StatusBadRequest},
		{apperrors.Wrap("request_in_flight", "busy", nil), http.StatusConflict},
		{apperrors.Wrap("no_result", "none", nil), http.StatusNotFound},
		{apperrors.Wrap("transport_error", "down", errors.New("refused")), http.StatusBadGateway},
		{apperrors.Wrap("backend_error", "nope", &astroapi.StatusError{StatusCode: http.StatusUnprocessableEntity}), http.StatusUnprocessableEntity},
		{apperrors.Wrap("backend_error", "boom", &astroapi.StatusError{StatusCode: http.StatusInternalServerError}), http.StatusBadGateway},
		{apperrors.Wrap("session_error", "store", nil), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}
