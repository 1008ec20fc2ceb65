package repositories

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"ml-showcase/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// TranscriptKeyPrefix starts every transcript key in the shared Badger instance.
const TranscriptKeyPrefix = "transcript:"

// BadgerTranscript stores the turns of one agent in BadgerDB.
// Keys are "transcript:{agent}:{seq:019d}:{uuid}" so a prefix scan returns
// turns in append order; the uuid only disambiguates.
type BadgerTranscript struct {
	db      *badger.DB
	log     *slog.Logger
	agentID domain.AgentID
	prefix  []byte

	mu  sync.Mutex
	seq uint64
}

// BadgerTranscripts is a TranscriptFactory sharing one Badger instance between agents.
func BadgerTranscripts(db *badger.DB, log *slog.Logger) TranscriptFactory {
	return func(agentID domain.AgentID) (ITranscriptRepository, error) {
		return NewBadgerTranscript(db, log, agentID)
	}
}

// NewBadgerTranscript resumes the sequence after any turn already stored for agentID.
func NewBadgerTranscript(db *badger.DB, log *slog.Logger, agentID domain.AgentID) (*BadgerTranscript, error) {
	t := &BadgerTranscript{
		db:      db,
		log:     log,
		agentID: agentID,
		prefix:  []byte(fmt.Sprintf("%s%s:", TranscriptKeyPrefix, agentID)),
	}
	n, err := t.Len()
	if err != nil {
		return nil, err
	}
	t.seq = uint64(n)
	return t, nil
}

func (t *BadgerTranscript) Append(entries ...domain.Entry) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	values := make([][]byte, len(entries))
	for i, entry := range entries {
		bytes, err := EncodeEntry(entry)
		if err != nil {
			return err
		}
		values[i] = bytes
	}

	err := t.db.Update(func(txn *badger.Txn) error {
		for i, value := range values {
			key := fmt.Sprintf("%s%019d:%s", t.prefix, t.seq+uint64(i)+1, uuid.NewString())
			if err := txn.Set([]byte(key), value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	t.seq += uint64(len(entries))
	t.log.Debug("Transcript appended", "agent", t.agentID, "entries", len(entries), "seq", t.seq)
	return nil
}

func (t *BadgerTranscript) Entries() ([]domain.Entry, error) {
	var values [][]byte
	err := t.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(t.prefix); it.ValidForPrefix(t.prefix); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decodeEntries(values)
}

// Last scans backwards from the newest key and returns entries oldest first.
func (t *BadgerTranscript) Last(n int) ([]domain.Entry, error) {
	if n <= 0 {
		return []domain.Entry{}, nil
	}
	var values [][]byte
	err := t.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append(append([]byte{}, t.prefix...), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(t.prefix) && len(values) < n; it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
	return decodeEntries(values)
}

func (t *BadgerTranscript) Len() (int, error) {
	count := 0
	err := t.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(t.prefix); it.ValidForPrefix(t.prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// EncodeEntry marshals an entry as a protobuf Struct. Structured content is
// flattened to plain JSON values first, and invalid UTF-8 is replaced by
// U+FFFD since protobuf strings must be valid.
func EncodeEntry(entry domain.Entry) ([]byte, error) {
	content, err := toPlain(entry.Content)
	if err != nil {
		return nil, fmt.Errorf("encode transcript content: %w", err)
	}
	s, err := structpb.NewStruct(map[string]any{
		"role":      validUTF8(string(entry.Role)),
		"timestamp": entry.Timestamp.UTC().Format(time.RFC3339Nano),
		"content":   validUTF8(content),
	})
	if err != nil {
		return nil, fmt.Errorf("encode transcript entry: %w", err)
	}
	return proto.Marshal(s)
}

// DecodeEntry is the inverse of EncodeEntry. Structured content comes back as
// map[string]any.
func DecodeEntry(value []byte) (domain.Entry, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(value, &s); err != nil {
		return domain.Entry{}, err
	}
	fields := s.AsMap()
	role, _ := fields["role"].(string)
	raw, _ := fields["timestamp"].(string)
	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("decode transcript timestamp: %w", err)
	}
	return domain.NewEntry(domain.Role(role), fields["content"], at), nil
}

func decodeEntries(values [][]byte) ([]domain.Entry, error) {
	entries := make([]domain.Entry, 0, len(values))
	for _, value := range values {
		entry, err := DecodeEntry(value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func toPlain(v any) (any, error) {
	switch v.(type) {
	case nil, string, bool, float64:
		return v, nil
	}
	bytes, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var plain any
	err = json.Unmarshal(bytes, &plain)
	return plain, err
}

func validUTF8(v any) any {
	switch x := v.(type) {
	case string:
		return strings.ToValidUTF8(x, "\uFFFD")
	case map[string]any:
		out := make(map[string]any, len(x))
		for key, value := range x {
			out[strings.ToValidUTF8(key, "\uFFFD")] = validUTF8(value)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, value := range x {
			out[i] = validUTF8(value)
		}
		return out
	}
	return v
}
