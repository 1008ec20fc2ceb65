package ai

import (
	"math/rand/v2"
	"sync"
)

// MockFeatureWidth is the width of vectors produced by MockVectorizer.
const MockFeatureWidth = 128

// NewRand returns a seeded generator; pass it to the mocks for reproducible outputs.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randSource serializes access to a *rand.Rand, which is not safe for concurrent use.
type randSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newRandSource(rng *rand.Rand) *randSource {
	if rng == nil {
		rng = NewRand(rand.Uint64())
	}
	return &randSource{rng: rng}
}

func (s *randSource) float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *randSource) intN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// MockModel stands in for a missing classifier. Its outputs carry no meaning.
type MockModel struct {
	src *randSource
}

func NewMockModel(rng *rand.Rand) *MockModel {
	return &MockModel{src: newRandSource(rng)}
}

func (m *MockModel) Kind() Kind { return KindMock }

func (m *MockModel) Predict(features [][]float64) ([]int, error) {
	labels := make([]int, len(features))
	for i := range features {
		labels[i] = m.src.intN(2)
	}
	return labels, nil
}

func (m *MockModel) PredictProba(features [][]float64) ([][2]float64, error) {
	out := make([][2]float64, len(features))
	for i := range features {
		a, b := m.src.float64(), m.src.float64()
		if a+b == 0 {
			out[i] = [2]float64{0.5, 0.5}
			continue
		}
		neg := a / (a + b)
		out[i] = [2]float64{neg, 1 - neg}
	}
	return out, nil
}

// MockVectorizer stands in for a missing vectorizer.
type MockVectorizer struct {
	src *randSource
}

func NewMockVectorizer(rng *rand.Rand) *MockVectorizer {
	return &MockVectorizer{src: newRandSource(rng)}
}

func (v *MockVectorizer) Kind() Kind { return KindMock }

func (v *MockVectorizer) Transform(texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i := range texts {
		vec := make([]float64, MockFeatureWidth)
		for j := range vec {
			vec[j] = v.src.float64()
		}
		out[i] = vec
	}
	return out, nil
}

// MockArtifact is what the registry hands out for a name with no artifact on
// disk. It satisfies both Model and Vectorizer so any consumer can use it.
type MockArtifact struct {
	*MockModel
	*MockVectorizer
}

func NewMockArtifact(rng *rand.Rand) *MockArtifact {
	src := newRandSource(rng)
	return &MockArtifact{
		MockModel:      &MockModel{src: src},
		MockVectorizer: &MockVectorizer{src: src},
	}
}

func (a *MockArtifact) Kind() Kind { return KindMock }
