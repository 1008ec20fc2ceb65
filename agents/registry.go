package agents

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"ml-showcase/domain"
	"ml-showcase/errors"
	"ml-showcase/repositories"

	"github.com/samber/lo"
)

// Registry maps agent ids to agents. It is read-only once built.
type Registry struct {
	agents map[domain.AgentID]Agent
}

func NewRegistry(agents ...Agent) (*Registry, error) {
	byID := make(map[domain.AgentID]Agent, len(agents))
	for _, agent := range agents {
		if _, ok := byID[agent.ID()]; ok {
			return nil, fmt.Errorf("duplicate agent id %q", agent.ID())
		}
		byID[agent.ID()] = agent
	}
	return &Registry{agents: byID}, nil
}

// DefaultRegistry builds the research and data analysis agents, each with its
// own transcript.
func DefaultRegistry(log *slog.Logger, transcripts repositories.TranscriptFactory,
	researchDelay time.Duration) (*Registry, error) {
	researchTranscript, err := transcripts(ResearchAgentID)
	if err != nil {
		return nil, err
	}
	research, err := NewResearchAgent(log, researchTranscript, researchDelay)
	if err != nil {
		return nil, err
	}

	analysisTranscript, err := transcripts(DataAnalysisAgentID)
	if err != nil {
		return nil, err
	}
	return NewRegistry(research, NewDataAnalysisAgent(log, analysisTranscript))
}

func (r *Registry) Get(id domain.AgentID) (Agent, error) {
	agent, ok := r.agents[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrAgentNotFound, id)
	}
	return agent, nil
}

// List returns the description of every agent, sorted by id.
func (r *Registry) List() []domain.AgentInfo {
	infos := lo.MapToSlice(r.agents, func(_ domain.AgentID, agent Agent) domain.AgentInfo {
		return agent.Info()
	})
	slices.SortFunc(infos, func(a, b domain.AgentInfo) int {
		return strings.Compare(string(a.ID), string(b.ID))
	})
	return infos
}
