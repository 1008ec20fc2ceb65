package agents

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeywordMatcher_Match(t *testing.T) {
	matcher, err := NewKeywordMatcher(researchKeywords)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		input    string
		expected Intent
	}{
		{name: "paper keyword", input: "Find me a paper on transformers", expected: IntentPapers},
		{name: "research keyword in uppercase", input: "RESEARCH on graphs", expected: IntentPapers},
		{name: "keyword inside a word", input: "any newspapers about it?", expected: IntentPapers},
		{name: "explain keyword", input: "Can you explain attention?", expected: IntentExplain},
		{name: "papers win over explain", input: "explain this research", expected: IntentPapers},
		{name: "no keyword", input: "hello there", expected: IntentNone},
		{name: "empty input", input: "", expected: IntentNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, matcher.Match(tc.input))
		})
	}
}
