package domain

type AgentID string

type AgentInfo struct {
	ID          AgentID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
}

// AnalysisReport is the structured answer of the data analysis agent.
type AnalysisReport struct {
	Summary          string   `json:"summary"`
	Insights         []string `json:"insights"`
	VisualizationURL string   `json:"visualization_url"`
}

// ChatReply is what a chat call returns to the boundary: the agent output and
// the tail of its transcript.
type ChatReply struct {
	Response any     `json:"response"`
	History  []Entry `json:"history"`
}
