package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"ml-showcase/ai"
	"ml-showcase/errors"
	"ml-showcase/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestModelRegistry_Get_CachesLoadedArtifact(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIArtifactRepository(ctrl)
	model := ai.NewLogisticRegression([]float64{1}, 0)

	// Given the artifact can be read exactly once
	repository.EXPECT().Load("sentiment_model").Return(model, nil).Times(1)
	registry := NewModelRegistry(log, repository, FallbackMock)

	// When it is requested twice
	first, err := registry.Get(ctx, "sentiment_model")
	req.NoError(err)
	second, err := registry.Get(ctx, "sentiment_model")
	req.NoError(err)

	// Then the second call returns the identical cached object
	req.Same(model, first)
	req.Same(first, second)
	req.Equal([]string{"sentiment_model"}, registry.Cached())
}

func TestModelRegistry_Get_MissingArtifactServesCachedMock(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIArtifactRepository(ctrl)

	repository.EXPECT().
		Load("tfidf_vectorizer").
		Return(nil, fmt.Errorf("%w: tfidf_vectorizer", errors.ErrArtifactMissing)).
		Times(1)
	registry := NewModelRegistry(log, repository, FallbackMock,
		WithMockFactory(func(string) ai.Artifact { return ai.NewMockArtifact(ai.NewRand(1)) }))

	first, err := registry.Get(ctx, "tfidf_vectorizer")
	req.NoError(err)
	req.Equal(ai.KindMock, first.Kind())
	_, ok := first.(ai.Vectorizer)
	req.True(ok)

	second, err := registry.Get(ctx, "tfidf_vectorizer")
	req.NoError(err)
	req.Same(first, second)
}

func TestModelRegistry_Get_StrictSurfacesMissing(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIArtifactRepository(ctrl)

	repository.EXPECT().
		Load("sentiment_model").
		Return(nil, fmt.Errorf("%w: sentiment_model", errors.ErrArtifactMissing)).
		Times(2)
	registry := NewModelRegistry(log, repository, FallbackStrict)

	_, err := registry.Get(context.Background(), "sentiment_model")
	req.ErrorIs(err, errors.ErrArtifactMissing)

	// Failures are not cached
	_, err = registry.Get(context.Background(), "sentiment_model")
	req.ErrorIs(err, errors.ErrArtifactMissing)
	req.Empty(registry.Cached())
}

func TestModelRegistry_Get_UnsupportedFormatIsAnError(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIArtifactRepository(ctrl)

	repository.EXPECT().
		Load("legacy").
		Return(nil, fmt.Errorf("%w: .pkl", errors.ErrUnsupportedFormat))
	registry := NewModelRegistry(log, repository, FallbackMock)

	_, err := registry.Get(context.Background(), "legacy")
	req.ErrorIs(err, errors.ErrUnsupportedFormat)
}

func TestModelRegistry_Get_ConcurrentFirstRequestsLoadOnce(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIArtifactRepository(ctrl)
	model := ai.NewLogisticRegression([]float64{1}, 0)

	repository.EXPECT().
		Load("sentiment_model").
		DoAndReturn(func(string) (ai.Artifact, error) {
			time.Sleep(50 * time.Millisecond)
			return model, nil
		}).
		Times(1)
	registry := NewModelRegistry(log, repository, FallbackMock)

	var wg sync.WaitGroup
	results := make([]ai.Artifact, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			artifact, err := registry.Get(context.Background(), "sentiment_model")
			if err == nil {
				results[i] = artifact
			}
		}()
	}
	wg.Wait()

	for _, artifact := range results {
		req.Same(model, artifact)
	}
}

func TestModelRegistry_Get_NamesDoNotBlockEachOther(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIArtifactRepository(ctrl)
	release := make(chan struct{})

	// Given a slow load for one name
	repository.EXPECT().
		Load("slow").
		DoAndReturn(func(string) (ai.Artifact, error) {
			<-release
			return ai.NewHashingVectorizer(4, true), nil
		})
	repository.EXPECT().Load("fast").Return(ai.NewHashingVectorizer(8, true), nil)
	registry := NewModelRegistry(log, repository, FallbackMock)

	done := make(chan struct{})
	go func() {
		_, _ = registry.Get(context.Background(), "slow")
		close(done)
	}()

	// Then another name resolves while the first is still loading
	artifact, err := registry.Get(context.Background(), "fast")
	req.NoError(err)
	req.Equal(8, artifact.(*ai.HashingVectorizer).Size())

	close(release)
	<-done
}

func TestModelRegistry_Get_HonoursContext(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIArtifactRepository(ctrl)
	release := make(chan struct{})
	defer close(release)

	repository.EXPECT().
		Load("slow").
		DoAndReturn(func(string) (ai.Artifact, error) {
			<-release
			return ai.NewHashingVectorizer(4, true), nil
		}).
		AnyTimes()
	registry := NewModelRegistry(log, repository, FallbackMock)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := registry.Get(ctx, "slow")
	req.ErrorIs(err, context.DeadlineExceeded)
}

func TestModelRegistry_List(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIArtifactRepository(ctrl)

	repository.EXPECT().List().Return([]string{"sentiment_model", "tfidf_vectorizer"}, nil)
	registry := NewModelRegistry(slog.Default(), repository, FallbackMock)

	names, err := registry.List()
	req.NoError(err)
	req.ElementsMatch([]string{"tfidf_vectorizer", "sentiment_model"}, names)
	req.Empty(registry.Cached())
}
