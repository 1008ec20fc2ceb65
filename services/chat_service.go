//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"

	"ml-showcase/domain"
	"ml-showcase/errors"
)

type IChatService interface {
	Agent(agentID domain.AgentID) (domain.AgentInfo, error)
	Chat(ctx context.Context, agentID domain.AgentID, message string) (domain.ChatReply, error)
	Agents() []domain.AgentInfo
}

type ChatRequest struct {
	AgentID domain.AgentID `validate:"required"`
	Message string         `validate:"required"`
}

type ChatService struct {
	log           *slog.Logger
	directory     AgentDirectory
	historyWindow int
}

// NewChatService returns a service replying with the last historyWindow
// transcript entries after each turn.
func NewChatService(log *slog.Logger, directory AgentDirectory, historyWindow int) *ChatService {
	return &ChatService{log: log, directory: directory, historyWindow: historyWindow}
}

// Chat resolves the agent first, so an unknown id is reported whatever the message.
func (s *ChatService) Chat(ctx context.Context, agentID domain.AgentID, message string) (domain.ChatReply, error) {
	agent, err := s.directory.Get(agentID)
	if err != nil {
		return domain.ChatReply{}, err
	}
	if err = validate.Struct(ChatRequest{AgentID: agentID, Message: message}); err != nil {
		return domain.ChatReply{}, fmt.Errorf("%w: no message provided", errors.ErrInvalidInput)
	}

	response, err := agent.Process(ctx, message)
	if err != nil {
		return domain.ChatReply{}, fmt.Errorf("agent %s: %w", agentID, err)
	}
	history, err := agent.Recent(s.historyWindow)
	if err != nil {
		return domain.ChatReply{}, fmt.Errorf("history of %s: %w", agentID, err)
	}

	s.log.Debug("Chat turn served", "agent", agentID, "history", len(history))
	return domain.ChatReply{Response: response, History: history}, nil
}

// Agent describes agentID, or wraps errors.ErrAgentNotFound.
func (s *ChatService) Agent(agentID domain.AgentID) (domain.AgentInfo, error) {
	agent, err := s.directory.Get(agentID)
	if err != nil {
		return domain.AgentInfo{}, err
	}
	return agent.Info(), nil
}

func (s *ChatService) Agents() []domain.AgentInfo {
	return s.directory.List()
}
