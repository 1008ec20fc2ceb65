package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"testing"

	"ml-showcase/ai"
	"ml-showcase/domain"
	"ml-showcase/errors"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type classifierFunc func(text string) (domain.PredictionResult, error)

func (f classifierFunc) Predict(text string) (domain.PredictionResult, error) { return f(text) }

func TestSentimentService_Predict(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	positive := domain.PredictionResult{
		Sentiment:     domain.Positive,
		Confidence:    0.9,
		Probabilities: domain.Probabilities{Negative: 0.1, Positive: 0.9},
	}

	testCases := []struct {
		name       string
		text       string
		classifier classifierFunc
		expected   domain.PredictionResult
		wantErr    error
	}{
		{
			name:       "Should return the classifier result",
			text:       "I love this product",
			classifier: func(string) (domain.PredictionResult, error) { return positive, nil },
			expected:   positive,
		},
		{
			name: "Should refuse empty text without calling the classifier",
			text: "",
			classifier: func(string) (domain.PredictionResult, error) {
				return domain.PredictionResult{}, fmt.Errorf("must not be called")
			},
			wantErr: errors.ErrInvalidInput,
		},
		{
			name: "Should surface classifier failures",
			text: "hello",
			classifier: func(string) (domain.PredictionResult, error) {
				return domain.PredictionResult{}, errors.ErrDimensionMismatch
			},
			wantErr: errors.ErrDimensionMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			// Given a service over the classifier
			service := NewSentimentService(log, tc.classifier)

			// When predicting
			result, err := service.Predict(context.Background(), tc.text)

			// Then the outcome matches
			if tc.wantErr != nil {
				req.ErrorIs(err, tc.wantErr)
				return
			}
			req.NoError(err)
			req.Equal(tc.expected, result)
		})
	}
}

func TestSentimentService_Predict_OnMocks(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a classifier built without any artifact
	classifier := ai.NewSentimentClassifier(context.Background(), log, emptySource{}, "tfidf_vectorizer", "sentiment_model", ai.NewRand(7))
	service := NewSentimentService(log, classifier)

	// When predicting a review
	result, err := service.Predict(context.Background(), "I love this product")

	// Then the result is well formed
	req.NoError(err)
	req.Contains([]domain.Sentiment{domain.Positive, domain.Negative}, result.Sentiment)
	req.GreaterOrEqual(result.Confidence, 0.5)
	req.LessOrEqual(result.Confidence, 1.0)
	req.Less(math.Abs(result.Probabilities.Sum()-1), 1e-6)
}

type emptySource struct{}

func (emptySource) Get(_ context.Context, name string) (ai.Artifact, error) {
	return nil, fmt.Errorf("%w: %s", errors.ErrArtifactMissing, name)
}
