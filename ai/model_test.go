package ai

import (
	"testing"

	"ml-showcase/errors"

	"github.com/stretchr/testify/require"
)

func TestLogisticRegression_PredictProba(t *testing.T) {
	req := require.New(t)
	m := NewLogisticRegression([]float64{2, -2}, 0)

	probas, err := m.PredictProba([][]float64{{1, 0}, {0, 1}, {0, 0}})
	req.NoError(err)
	req.Len(probas, 3)

	for _, p := range probas {
		req.InDelta(1.0, p[0]+p[1], 1e-9)
	}
	req.Greater(probas[0][1], 0.5)
	req.Less(probas[1][1], 0.5)
	req.InDelta(0.5, probas[2][1], 1e-9)
}

func TestLogisticRegression_Predict(t *testing.T) {
	req := require.New(t)
	m := NewLogisticRegression([]float64{2, -2}, 0)

	labels, err := m.Predict([][]float64{{1, 0}, {0, 1}})
	req.NoError(err)
	req.Equal([]int{1, 0}, labels)
}

func TestLogisticRegression_DimensionMismatch(t *testing.T) {
	req := require.New(t)
	m := NewLogisticRegression([]float64{1, 1, 1}, 0)

	_, err := m.Predict([][]float64{{1, 0}})
	req.ErrorIs(err, errors.ErrDimensionMismatch)
}
