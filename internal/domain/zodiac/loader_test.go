package zodiac

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoaderFallsBackOnNetworkError(t *testing.T) {
	src := &stubSignSource{err: errors.New("dial tcp 127.0.0.1:5000: connection refused")}
	loader := NewLoader(src, NewRegistry(), newTestLogger())

	reg := loader.Load(context.Background())

	require.Equal(t, SourceFallback, reg.Source())
	require.Equal(t, FallbackSigns(), reg.Signs())
	require.Len(t, reg.Signs(), 12)
	require.Equal(t, 1, src.calls)
}

func TestLoaderFallsBackOnEmptyList(t *testing.T) {
	src := &stubSignSource{signs: []Sign{}}
	reg := NewLoader(src, NewRegistry(), newTestLogger()).Load(context.Background())

	require.Equal(t, SourceFallback, reg.Source())
	require.Len(t, reg.Signs(), 12)
}

func TestLoaderUsesBackendSigns(t *testing.T) {
	apiSigns := FallbackSigns()
	apiSigns[0].Dates = "3/21 - 4/19 (api)"
	src := &stubSignSource{signs: apiSigns}

	reg := NewLoader(src, NewRegistry(), newTestLogger()).Load(context.Background())

	require.Equal(t, SourceAPI, reg.Source())
	require.Equal(t, apiSigns, reg.Signs())
}

func TestLoaderRunsOnce(t *testing.T) {
	src := &stubSignSource{err: errors.New("down")}
	registry := NewRegistry()
	loader := NewLoader(src, registry, newTestLogger())

	loader.Load(context.Background())
	src.err = nil
	src.signs = []Sign{{Name: "Aries"}}
	loader.Load(context.Background())

	require.Equal(t, 1, src.calls)
	require.Equal(t, SourceFallback, registry.Source())
}

func TestRegistryBeforeLoad(t *testing.T) {
	reg := NewRegistry()
	require.False(t, reg.Loaded())
	require.Nil(t, reg.Signs())
}

type stubSignSource struct {
	signs []Sign
	err   error
	calls int
}

func (s *stubSignSource) ListSigns(ctx context.Context) ([]Sign, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.signs, nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
