package ai

import (
	"hash/fnv"
	"strings"
)

// HashingVectorizer transforms text into numerical features with the hashing trick.
type HashingVectorizer struct {
	size   int
	binary bool
}

// NewHashingVectorizer initializes a vectorizer with a fixed size.
// With binary set, a bucket holds 1.0 when any token hashes to it; otherwise it counts tokens.
func NewHashingVectorizer(size int, binary bool) *HashingVectorizer {
	return &HashingVectorizer{size: size, binary: binary}
}

func (v *HashingVectorizer) Kind() Kind { return KindHashingVectorizer }

// Size is the width of every produced vector.
func (v *HashingVectorizer) Size() int { return v.size }

// Features maps a raw string to a vector of Size() buckets.
// Punctuation and digits are kept: "f*ck" and "fck" are different signals.
func (v *HashingVectorizer) Features(text string) []float64 {
	vec := make([]float64, v.size)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(w))
		idx := int(h.Sum32() % uint32(v.size))
		if v.binary {
			vec[idx] = 1.0
			continue
		}
		vec[idx]++
	}
	return vec
}

func (v *HashingVectorizer) Transform(texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i, text := range texts {
		out[i] = v.Features(text)
	}
	return out, nil
}
