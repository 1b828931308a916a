package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestBackendRecorderCountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewBackendRecorder(reg)

	rec.ObserveBackendCall("predict", "ok", 20*time.Millisecond)
	rec.ObserveBackendCall("predict", "ok", 30*time.Millisecond)
	rec.ObserveBackendCall("predict", "backend_error", 5*time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(rec.calls.WithLabelValues("predict", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.calls.WithLabelValues("predict", "backend_error")))
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *BackendRecorder
	require.NotPanics(t, func() {
		rec.ObserveBackendCall("predict", "ok", time.Millisecond)
	})
}
