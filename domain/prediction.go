package domain

type Sentiment string

const (
	Negative Sentiment = "negative"
	Positive Sentiment = "positive"
)

// SentimentFromLabel maps a binary classifier label to a sentiment.
func SentimentFromLabel(label int) Sentiment {
	if label == 1 {
		return Positive
	}
	return Negative
}

type Probabilities struct {
	Negative float64 `json:"negative"`
	Positive float64 `json:"positive"`
}

// Sum returns the total mass of the distribution; it must be 1.
func (p Probabilities) Sum() float64 {
	return p.Negative + p.Positive
}

type PredictionResult struct {
	Sentiment     Sentiment     `json:"sentiment"`
	Confidence    float64       `json:"confidence"`
	Probabilities Probabilities `json:"probabilities"`
}
