//go:generate go run go.uber.org/mock/mockgen -source=transcript.go -destination=../mocks/mock_transcript_repository.go -package=mocks
package repositories

import (
	"sync"

	"ml-showcase/domain"
)

// ITranscriptRepository stores the ordered turns of one agent.
// Entries passed to a single Append call are stored contiguously, in order.
type ITranscriptRepository interface {
	Append(entries ...domain.Entry) error
	Entries() ([]domain.Entry, error)
	Last(n int) ([]domain.Entry, error)
	Len() (int, error)
}

// TranscriptFactory builds the transcript of a given agent.
type TranscriptFactory func(agentID domain.AgentID) (ITranscriptRepository, error)

// MemoryTranscript keeps the turns in a slice for the process lifetime.
type MemoryTranscript struct {
	mu      sync.RWMutex
	entries []domain.Entry
}

func NewMemoryTranscript() *MemoryTranscript {
	return &MemoryTranscript{entries: make([]domain.Entry, 0)}
}

// MemoryTranscripts is a TranscriptFactory for slice-backed transcripts.
func MemoryTranscripts(domain.AgentID) (ITranscriptRepository, error) {
	return NewMemoryTranscript(), nil
}

func (t *MemoryTranscript) Append(entries ...domain.Entry) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, entries...)
	return nil
}

// Entries returns a copy of the whole transcript.
func (t *MemoryTranscript) Entries() ([]domain.Entry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	cp := make([]domain.Entry, len(t.entries))
	copy(cp, t.entries)
	return cp, nil
}

// Last returns a copy of at most n trailing entries, oldest first.
func (t *MemoryTranscript) Last(n int) ([]domain.Entry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if n <= 0 {
		return []domain.Entry{}, nil
	}
	start := max(len(t.entries)-n, 0)
	cp := make([]domain.Entry, len(t.entries)-start)
	copy(cp, t.entries[start:])
	return cp, nil
}

func (t *MemoryTranscript) Len() (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries), nil
}
