package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Entry is one turn of an agent transcript.
// Content is either a string or a structured payload such as AnalysisReport.
type Entry struct {
	Role      Role      `json:"role"`
	Content   any       `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func NewEntry(role Role, content any, at time.Time) Entry {
	return Entry{Role: role, Content: content, Timestamp: at}
}
