//go:generate go run go.uber.org/mock/mockgen -source=sentiment_service.go -destination=../mocks/mock_sentiment_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ml-showcase/domain"
	"ml-showcase/errors"

	"github.com/abadojack/whatlanggo"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ISentimentService interface {
	Predict(ctx context.Context, text string) (domain.PredictionResult, error)
}

type PredictRequest struct {
	Text string `validate:"required"`
}

type SentimentService struct {
	log        *slog.Logger
	classifier Classifier
}

func NewSentimentService(log *slog.Logger, classifier Classifier) *SentimentService {
	return &SentimentService{log: log, classifier: classifier}
}

func (s *SentimentService) Predict(ctx context.Context, text string) (domain.PredictionResult, error) {
	if err := validate.Struct(PredictRequest{Text: text}); err != nil {
		return domain.PredictionResult{}, fmt.Errorf("%w: no text provided", errors.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return domain.PredictionResult{}, err
	}

	start := time.Now()
	result, err := s.classifier.Predict(text)
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("predict sentiment: %w", err)
	}

	s.log.Debug("Sentiment predicted",
		"lang", whatlanggo.Detect(text).Lang.Iso6391(),
		"chars", len(text),
		"sentiment", result.Sentiment,
		"confidence", result.Confidence,
		"duration", time.Since(start),
	)
	return result, nil
}
