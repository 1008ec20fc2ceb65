package ai

// Kind discriminates the artifact documents found in the models directory.
type Kind string

const (
	KindHashingVectorizer  Kind = "hashing_vectorizer"
	KindLogisticRegression Kind = "logistic_regression"
	KindMock               Kind = "mock"
)

// Artifact is any object resolved by the model registry.
type Artifact interface {
	Kind() Kind
}

// Model predicts a binary label and a 2-class distribution per feature vector.
type Model interface {
	Artifact
	Predict(features [][]float64) ([]int, error)
	PredictProba(features [][]float64) ([][2]float64, error)
}

// Vectorizer turns raw texts into fixed-width feature vectors.
type Vectorizer interface {
	Artifact
	Transform(texts []string) ([][]float64, error)
}
