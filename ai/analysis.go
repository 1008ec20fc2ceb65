package ai

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"ml-showcase/domain"

	"github.com/samber/lo"
)

// ArtifactSource resolves artifacts by name. The model registry implements it.
type ArtifactSource interface {
	Get(ctx context.Context, name string) (Artifact, error)
}

// SentimentClassifier composes a vectorizer and a binary model into a single
// text -> sentiment call. It is stateless between calls.
type SentimentClassifier struct {
	log        *slog.Logger
	vectorizer Vectorizer
	model      Model
}

// NewSentimentClassifier acquires the vectorizer and the model from source.
// Construction never fails: whatever cannot be acquired, or does not provide
// the required capability, is replaced by a mock seeded from rng.
func NewSentimentClassifier(ctx context.Context, log *slog.Logger, source ArtifactSource,
	vectorizerName, modelName string, rng *rand.Rand) *SentimentClassifier {
	c := &SentimentClassifier{log: log}

	if artifact, err := source.Get(ctx, vectorizerName); err != nil {
		log.Warn("Vectorizer unavailable, using mock", "name", vectorizerName, "error", err)
	} else if v, ok := artifact.(Vectorizer); ok {
		c.vectorizer = v
	} else {
		log.Warn("Artifact is not a vectorizer, using mock", "name", vectorizerName, "kind", artifact.Kind())
	}

	if artifact, err := source.Get(ctx, modelName); err != nil {
		log.Warn("Model unavailable, using mock", "name", modelName, "error", err)
	} else if m, ok := artifact.(Model); ok {
		c.model = m
	} else {
		log.Warn("Artifact is not a model, using mock", "name", modelName, "kind", artifact.Kind())
	}

	if c.vectorizer == nil {
		c.vectorizer = NewMockVectorizer(rng)
	}
	if c.model == nil || !compatible(c.vectorizer, c.model) {
		switch {
		case c.model == nil:
		case c.vectorizer.Kind() == KindMock:
			log.Warn("Vectorizer is a mock, model cannot read its features, using mock model",
				"vectorizer", vectorizerName, "model", modelName)
		default:
			log.Warn("Model width does not match vectorizer, using mock model",
				"vectorizer", vectorizerName, "model", modelName)
		}
		c.model = NewMockModel(rng)
	}

	log.Debug("Sentiment classifier ready",
		"vectorizer", c.vectorizer.Kind(), "model", c.model.Kind())
	return c
}

// compatible reports whether the model accepts what the vectorizer produces.
// Mocks accept any width.
func compatible(v Vectorizer, m Model) bool {
	model, ok := m.(interface{ Width() int })
	if !ok {
		return true
	}
	vec, ok := v.(interface{ Size() int })
	return ok && vec.Size() == model.Width()
}

// Predict classifies a single text.
func (c *SentimentClassifier) Predict(text string) (domain.PredictionResult, error) {
	features, err := c.vectorizer.Transform([]string{text})
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("transform: %w", err)
	}

	labels, err := c.model.Predict(features)
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("predict: %w", err)
	}
	probas, err := c.model.PredictProba(features)
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("predict proba: %w", err)
	}
	if len(labels) != 1 || len(probas) != 1 {
		return domain.PredictionResult{}, fmt.Errorf("expected one prediction, got %d labels and %d distributions",
			len(labels), len(probas))
	}

	p := probas[0]
	return domain.PredictionResult{
		Sentiment:  domain.SentimentFromLabel(labels[0]),
		Confidence: lo.Max(p[:]),
		Probabilities: domain.Probabilities{
			Negative: p[0],
			Positive: p[1],
		},
	}, nil
}

// Components exposes what the classifier ended up using, for diagnostics.
func (c *SentimentClassifier) Components() (vectorizer Kind, model Kind) {
	return c.vectorizer.Kind(), c.model.Kind()
}
