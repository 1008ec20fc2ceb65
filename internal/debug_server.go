package internal

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"ml-showcase/repositories"

	"github.com/dgraph-io/badger/v4"
	jsoniter "github.com/json-iterator/go"
)

//go:embed inspect.html
var templatesFS embed.FS

const maxDetail = 120

type InspectRow struct {
	Key       string
	Type      string
	Timestamp string
	EntityID  string
	Namespace string
	Seq       string
	Detail    string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// Inspector renders the keys of a Badger instance under a prefix as an HTML table.
type Inspector struct {
	db            *badger.DB
	defaultPrefix string
	mapper        RowMapper
	stats         StatsProvider
	tmpl          *template.Template
}

func NewInspector(db *badger.DB, defaultPrefix string, mapper RowMapper, stats StatsProvider) *Inspector {
	if mapper == nil {
		mapper = DefaultMapper
	}
	return &Inspector{
		db:            db,
		defaultPrefix: defaultPrefix,
		mapper:        mapper,
		stats:         stats,
		tmpl:          template.Must(template.ParseFS(templatesFS, "inspect.html")),
	}
}

func (i *Inspector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		prefix = i.defaultPrefix
	}

	data := PageData{Prefix: prefix, Stats: make(map[string]any)}
	if i.stats != nil {
		data.Stats = i.stats()
	}
	items, err := i.Rows(prefix)
	if err != nil {
		http.Error(w, "inspection failed", http.StatusInternalServerError)
		return
	}
	data.Items = items

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = i.tmpl.Execute(w, data)
}

// Rows maps every key under prefix, in key order.
func (i *Inspector) Rows(prefix string) ([]InspectRow, error) {
	var rows []InspectRow
	err := i.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				rows = append(rows, i.mapper(string(item.Key()), val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return rows, err
}

// DefaultMapper reads "{type}:{namespace}:{seq}:{id}" keys without decoding values.
func DefaultMapper(key string, val []byte) InspectRow {
	parts := strings.Split(key, ":")
	row := InspectRow{
		Key:       key,
		Type:      "RAW",
		Timestamp: "--:--:--",
		EntityID:  "--------",
		Namespace: "default",
		Seq:       "-",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	if len(parts) >= 4 {
		row.Namespace = parts[1]
		if seq, err := strconv.ParseUint(parts[2], 10, 64); err == nil {
			row.Seq = strconv.FormatUint(seq, 10)
		}
		row.EntityID = parts[3]
		if len(row.EntityID) > 8 {
			row.EntityID = row.EntityID[:8]
		}
	}
	return row
}

// TranscriptMapper decodes transcript entries on top of DefaultMapper.
func TranscriptMapper(key string, val []byte) InspectRow {
	row := DefaultMapper(key, val)
	entry, err := repositories.DecodeEntry(val)
	if err != nil {
		row.Detail = "undecodable: " + err.Error()
		return row
	}

	row.Type = strings.ToUpper(string(entry.Role))
	row.Timestamp = entry.Timestamp.Format("15:04:05.000")
	switch content := entry.Content.(type) {
	case string:
		row.Detail = content
	default:
		bytes, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(content)
		if err != nil {
			row.Detail = "unprintable content"
		} else {
			row.Detail = string(bytes)
		}
	}
	row.Detail = truncate(row.Detail, maxDetail)
	return row
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
