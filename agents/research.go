package agents

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ml-showcase/domain"
	"ml-showcase/repositories"
)

const (
	ResearchAgentID domain.AgentID = "research"

	papersAnswer = "I found several relevant papers on this topic. " +
		"Here's a summary: [Your agent would fetch real papers here]"
	explainAnswer = "This concept relates to [domain]. The key insight is... " +
		"[Your agent would provide detailed explanation]"
)

var researchKeywords = map[Intent][]string{
	IntentPapers:  {"paper", "research"},
	IntentExplain: {"explain"},
}

// ResearchAgent answers with canned text chosen by the keywords of the query.
type ResearchAgent struct {
	*BaseAgent
	matcher KeywordMatcher
	delay   time.Duration
}

// NewResearchAgent builds the agent. delay simulates thinking time; zero disables it.
func NewResearchAgent(log *slog.Logger, transcript repositories.ITranscriptRepository,
	delay time.Duration) (*ResearchAgent, error) {
	matcher, err := NewKeywordMatcher(researchKeywords)
	if err != nil {
		return nil, fmt.Errorf("build research keywords: %w", err)
	}
	a := &ResearchAgent{matcher: matcher, delay: delay}
	a.BaseAgent = NewBaseAgent(domain.AgentInfo{
		ID:          ResearchAgentID,
		Name:        "Research Assistant",
		Description: "Helps find and summarize research papers",
	}, log, transcript, a)
	return a, nil
}

func (a *ResearchAgent) Respond(ctx context.Context, input string) (any, error) {
	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	switch a.matcher.Match(input) {
	case IntentPapers:
		return papersAnswer, nil
	case IntentExplain:
		return explainAnswer, nil
	default:
		return fmt.Sprintf("I understand you're asking about '%s'. Let me help you with that...", input), nil
	}
}
