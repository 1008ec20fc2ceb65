package agents

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ml-showcase/domain"
	"ml-showcase/repositories"
)

// Agent answers free-text input and keeps the transcript of the exchange.
type Agent interface {
	ID() domain.AgentID
	Name() string
	Description() string
	Info() domain.AgentInfo
	Process(ctx context.Context, input string) (any, error)
	History() ([]domain.Entry, error)
	Recent(n int) ([]domain.Entry, error)
}

// Responder produces the output of a variant for one input.
type Responder interface {
	Respond(ctx context.Context, input string) (any, error)
}

// BaseAgent carries the identity and the transcript shared by every variant.
// Process holds the agent lock for the whole turn, so concurrent callers see
// either none or both of the entries a turn appends.
type BaseAgent struct {
	info       domain.AgentInfo
	log        *slog.Logger
	transcript repositories.ITranscriptRepository
	responder  Responder
	now        func() time.Time

	mu sync.Mutex
}

func NewBaseAgent(info domain.AgentInfo, log *slog.Logger,
	transcript repositories.ITranscriptRepository, responder Responder) *BaseAgent {
	return &BaseAgent{
		info:       info,
		log:        log,
		transcript: transcript,
		responder:  responder,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (a *BaseAgent) Info() domain.AgentInfo { return a.info }
func (a *BaseAgent) ID() domain.AgentID     { return a.info.ID }
func (a *BaseAgent) Name() string           { return a.info.Name }
func (a *BaseAgent) Description() string    { return a.info.Description }

// Process records the user turn, asks the variant for a response and records
// the agent turn. Nothing is recorded when the variant fails.
func (a *BaseAgent) Process(ctx context.Context, input string) (any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	askedAt := a.now()
	output, err := a.responder.Respond(ctx, input)
	if err != nil {
		return nil, err
	}

	err = a.transcript.Append(
		domain.NewEntry(domain.RoleUser, input, askedAt),
		domain.NewEntry(domain.RoleAgent, output, a.now()),
	)
	if err != nil {
		return nil, fmt.Errorf("record turn of %s: %w", a.info.ID, err)
	}
	a.log.Debug("Agent turn recorded", "agent", a.info.ID, "latency", a.now().Sub(askedAt))
	return output, nil
}

func (a *BaseAgent) History() ([]domain.Entry, error) {
	return a.transcript.Entries()
}

// Recent returns at most n trailing turns, oldest first.
func (a *BaseAgent) Recent(n int) ([]domain.Entry, error) {
	return a.transcript.Last(n)
}
