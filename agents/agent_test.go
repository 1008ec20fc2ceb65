package agents

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"ml-showcase/domain"
	"ml-showcase/mocks"
	"ml-showcase/repositories"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResearchAgent_Process(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "papers", input: "Find recent papers on LLMs", expected: papersAnswer},
		{name: "explain", input: "Explain gradient descent", expected: explainAnswer},
		{name: "generic", input: "hello", expected: "I understand you're asking about 'hello'. Let me help you with that..."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			// Given a research agent with no simulated delay
			transcript := repositories.NewMemoryTranscript()
			agent, err := NewResearchAgent(log, transcript, 0)
			req.NoError(err)

			// When the agent processes the input
			output, err := agent.Process(context.Background(), tc.input)

			// Then the canned answer is returned and both turns are recorded
			req.NoError(err)
			req.Equal(tc.expected, output)
			entries, err := agent.History()
			req.NoError(err)
			req.Len(entries, 2)
			req.Equal(domain.RoleUser, entries[0].Role)
			req.Equal(tc.input, entries[0].Content)
			req.Equal(domain.RoleAgent, entries[1].Role)
			req.Equal(tc.expected, entries[1].Content)
			req.False(entries[1].Timestamp.Before(entries[0].Timestamp))
		})
	}
}

func TestResearchAgent_Process_HonoursContext(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a research agent thinking for a long time
	transcript := repositories.NewMemoryTranscript()
	agent, err := NewResearchAgent(log, transcript, time.Hour)
	req.NoError(err)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// When the caller gives up
	_, err = agent.Process(ctx, "research please")

	// Then nothing is recorded
	req.ErrorIs(err, context.DeadlineExceeded)
	n, err := transcript.Len()
	req.NoError(err)
	req.Zero(n)
}

func TestDataAnalysisAgent_Process(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a data analysis agent
	agent := NewDataAnalysisAgent(log, repositories.NewMemoryTranscript())

	// When it is asked anything
	output, err := agent.Process(context.Background(), "whatever")

	// Then the sample report is returned and recorded
	req.NoError(err)
	report, ok := output.(domain.AnalysisReport)
	req.True(ok)
	req.Len(report.Insights, 3)
	req.Equal("Dataset contains 1,234 samples with 12 features", report.Summary)
	req.Equal("/static/img/sample_chart.png", report.VisualizationURL)
	entries, err := agent.History()
	req.NoError(err)
	req.Len(entries, 2)
	req.Equal(report, entries[1].Content)
}

func TestBaseAgent_Process_AppendsBothTurnsAtOnce(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a transcript expecting a single write of two entries
	transcript := mocks.NewMockITranscriptRepository(ctrl)
	transcript.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(entries ...domain.Entry) error {
			req.Equal(domain.RoleUser, entries[0].Role)
			req.Equal(domain.RoleAgent, entries[1].Role)
			return nil
		}).
		Times(1)
	agent := NewDataAnalysisAgent(log, transcript)

	// When the agent processes an input
	_, err := agent.Process(context.Background(), "dataset")

	// Then the write happened once
	req.NoError(err)
}

func TestBaseAgent_Process_StoreFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a transcript that cannot be written
	transcript := mocks.NewMockITranscriptRepository(ctrl)
	transcript.EXPECT().Append(gomock.Any(), gomock.Any()).Return(fmt.Errorf("disk full"))
	agent := NewDataAnalysisAgent(log, transcript)

	// When the agent processes an input
	output, err := agent.Process(context.Background(), "dataset")

	// Then the failure is surfaced
	req.Error(err)
	req.Nil(output)
}

func TestBaseAgent_Process_ConcurrentTurnsStayPaired(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a research agent shared by many callers
	transcript := repositories.NewMemoryTranscript()
	agent, err := NewResearchAgent(log, transcript, time.Millisecond)
	req.NoError(err)

	// When they all chat at once
	const callers = 20
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = agent.Process(context.Background(), fmt.Sprintf("question %d", i))
		}()
	}
	wg.Wait()

	// Then every user turn is directly followed by its answer
	entries, err := agent.History()
	req.NoError(err)
	req.Len(entries, 2*callers)
	for i := 0; i < len(entries); i += 2 {
		req.Equal(domain.RoleUser, entries[i].Role)
		req.Equal(domain.RoleAgent, entries[i+1].Role)
		req.Contains(entries[i+1].Content, entries[i].Content)
	}
}

func TestBaseAgent_Recent(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given an agent with three turns
	agent := NewDataAnalysisAgent(log, repositories.NewMemoryTranscript())
	for range 3 {
		_, err := agent.Process(context.Background(), "again")
		req.NoError(err)
	}

	// When the last five entries are requested
	recent, err := agent.Recent(5)

	// Then they end with the agent answer
	req.NoError(err)
	req.Len(recent, 5)
	req.Equal(domain.RoleAgent, recent[4].Role)
	req.Equal(domain.RoleAgent, recent[0].Role)
}
