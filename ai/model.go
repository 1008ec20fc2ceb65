package ai

import (
	"fmt"
	"math"

	"ml-showcase/errors"
)

// LogisticRegression is a linear binary classifier over hashed features.
type LogisticRegression struct {
	weights []float64
	bias    float64
}

func NewLogisticRegression(weights []float64, bias float64) *LogisticRegression {
	return &LogisticRegression{weights: weights, bias: bias}
}

func (m *LogisticRegression) Kind() Kind { return KindLogisticRegression }

// Width is the number of features the model expects.
func (m *LogisticRegression) Width() int { return len(m.weights) }

func (m *LogisticRegression) PredictProba(features [][]float64) ([][2]float64, error) {
	out := make([][2]float64, len(features))
	for i, x := range features {
		p, err := m.positive(x)
		if err != nil {
			return nil, err
		}
		out[i] = [2]float64{1 - p, p}
	}
	return out, nil
}

func (m *LogisticRegression) Predict(features [][]float64) ([]int, error) {
	probas, err := m.PredictProba(features)
	if err != nil {
		return nil, err
	}
	labels := make([]int, len(probas))
	for i, p := range probas {
		if p[1] >= 0.5 {
			labels[i] = 1
		}
	}
	return labels, nil
}

func (m *LogisticRegression) positive(x []float64) (float64, error) {
	if len(x) != len(m.weights) {
		return 0, fmt.Errorf("%w: got %d features, model expects %d",
			errors.ErrDimensionMismatch, len(x), len(m.weights))
	}
	z := m.bias
	for i, w := range m.weights {
		z += w * x[i]
	}
	return 1 / (1 + math.Exp(-z)), nil
}
