package agents

import (
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Intent is what a keyword reveals about a request. Lower values win when
// several intents match the same text.
type Intent int

const (
	IntentNone Intent = iota
	IntentPapers
	IntentExplain
)

// KeywordMatcher finds keywords anywhere in a text, case-insensitively, in one pass.
type KeywordMatcher struct {
	machine *goahocorasick.Machine
	intents map[string]Intent
}

// NewKeywordMatcher builds the Aho-Corasick automaton for every keyword of every intent.
func NewKeywordMatcher(keywords map[Intent][]string) (KeywordMatcher, error) {
	intents := make(map[string]Intent)
	var patterns [][]rune
	for intent, words := range keywords {
		for _, word := range words {
			word = strings.ToLower(word)
			if word == "" {
				continue
			}
			if _, seen := intents[word]; seen {
				continue
			}
			intents[word] = intent
			patterns = append(patterns, []rune(word))
		}
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return KeywordMatcher{}, err
	}
	return KeywordMatcher{machine: m, intents: intents}, nil
}

// Match returns the strongest intent found in text, or IntentNone.
func (m KeywordMatcher) Match(text string) Intent {
	content := []rune(strings.ToLower(text))
	if len(content) == 0 {
		return IntentNone
	}

	best := IntentNone
	for _, term := range m.machine.MultiPatternSearch(content, false) {
		intent := m.intents[string(term.Word)]
		if best == IntentNone || intent < best {
			best = intent
		}
	}
	return best
}
