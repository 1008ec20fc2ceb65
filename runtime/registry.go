package runtime

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"ml-showcase/ai"
	apperrors "ml-showcase/errors"
	"ml-showcase/repositories"

	"github.com/samber/lo"
	"golang.org/x/sync/singleflight"
)

// FallbackStrategy decides what the registry hands out for a name without artifact.
type FallbackStrategy string

const (
	// FallbackMock substitutes a mock artifact; a missing artifact is never an error.
	FallbackMock FallbackStrategy = "mock"
	// FallbackStrict surfaces errors.ErrArtifactMissing to the caller.
	FallbackStrict FallbackStrategy = "strict"
)

type MockFactory func(name string) ai.Artifact

type Option func(*ModelRegistry)

// WithMockFactory replaces how mock artifacts are built, e.g. to seed them.
func WithMockFactory(factory MockFactory) Option {
	return func(r *ModelRegistry) { r.newMock = factory }
}

// ModelRegistry resolves model names to artifacts and keeps them for the
// process lifetime. Concurrent first requests for the same name share a
// single load; loads of different names do not wait on each other.
type ModelRegistry struct {
	log        *slog.Logger
	repository repositories.IArtifactRepository
	fallback   FallbackStrategy
	newMock    MockFactory

	mu    sync.RWMutex
	cache map[string]ai.Artifact
	group singleflight.Group
}

func NewModelRegistry(log *slog.Logger, repository repositories.IArtifactRepository,
	fallback FallbackStrategy, opts ...Option) *ModelRegistry {
	r := &ModelRegistry{
		log:        log,
		repository: repository,
		fallback:   fallback,
		newMock:    func(string) ai.Artifact { return ai.NewMockArtifact(nil) },
		cache:      make(map[string]ai.Artifact),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the cached artifact for name, loading it on first use.
func (r *ModelRegistry) Get(ctx context.Context, name string) (ai.Artifact, error) {
	if artifact, ok := r.cached(name); ok {
		return artifact, nil
	}

	ch := r.group.DoChan(name, func() (any, error) {
		if artifact, ok := r.cached(name); ok {
			return artifact, nil
		}
		return r.load(name)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(ai.Artifact), nil
	}
}

func (r *ModelRegistry) load(name string) (ai.Artifact, error) {
	start := time.Now()
	artifact, err := r.repository.Load(name)
	switch {
	case err == nil:
		r.log.Info("Model loaded", "name", name, "kind", artifact.Kind(), "duration", time.Since(start))
	case errors.Is(err, apperrors.ErrArtifactMissing) && r.fallback == FallbackMock:
		artifact = r.newMock(name)
		r.log.Info("No artifact found, serving mock", "name", name)
	default:
		r.log.Error("Model loading failed", "name", name, "error", err)
		return nil, err
	}

	r.mu.Lock()
	r.cache[name] = artifact
	r.mu.Unlock()
	return artifact, nil
}

func (r *ModelRegistry) cached(name string) (ai.Artifact, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	artifact, ok := r.cache[name]
	return artifact, ok
}

// List enumerates artifacts on disk, whatever the cache holds.
func (r *ModelRegistry) List() ([]string, error) {
	return r.repository.List()
}

// Cached returns the names resolved so far, sorted.
func (r *ModelRegistry) Cached() []string {
	r.mu.RLock()
	names := lo.Keys(r.cache)
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}
