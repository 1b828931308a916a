package zodiac

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// SignSource retrieves the ordered sign list from the prediction backend.
type SignSource interface {
	ListSigns(ctx context.Context) ([]Sign, error)
}

// Registry holds the sign list for the lifetime of the process.
type Registry struct {
	once   sync.Once
	mu     sync.RWMutex
	signs  []Sign
	source string
}

// NewRegistry returns an empty registry; Loader.Load fills it.
func NewRegistry() *Registry {
	return &Registry{}
}

// Signs returns a copy of the loaded signs, or nil before loading.
func (r *Registry) Signs() []Sign {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.signs == nil {
		return nil
	}
	out := make([]Sign, len(r.signs))
	copy(out, r.signs)
	return out
}

// Source reports where the signs came from: SourceAPI, SourceFallback or "" if not loaded.
func (r *Registry) Source() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.source
}

// Loaded reports whether the registry has been populated.
func (r *Registry) Loaded() bool {
	return r.Source() != ""
}

func (r *Registry) set(signs []Sign, source string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.signs = signs
	r.source = source
}

// Loader populates a Registry from the backend, degrading to the built-in table.
type Loader struct {
	source   SignSource
	registry *Registry
	logger   *slog.Logger
}

// NewLoader wires the reference data loader.
func NewLoader(source SignSource, registry *Registry, logger *slog.Logger) *Loader {
	return &Loader{
		source:   source,
		registry: registry,
		logger:   logger.With("component", "zodiac.loader"),
	}
}

var errEmptySignList = errors.New("backend returned no zodiac signs")

// Load fills the registry exactly once. Failures fall back to FallbackSigns and are only logged.
func (l *Loader) Load(ctx context.Context) *Registry {
	l.registry.once.Do(func() {
		signs, err := l.source.ListSigns(ctx)
		if err == nil && len(signs) == 0 {
			err = errEmptySignList
		}
		if err != nil {
			l.logger.Warn("zodiac signs unavailable, using built-in table", "error", err)
			l.registry.set(FallbackSigns(), SourceFallback)
			return
		}
		l.logger.Info("zodiac signs loaded", "count", len(signs))
		l.registry.set(signs, SourceAPI)
	})
	return l.registry
}
