package agents

import (
	"context"
	"log/slog"

	"ml-showcase/domain"
	"ml-showcase/repositories"
)

const DataAnalysisAgentID domain.AgentID = "data_analysis"

// DataAnalysisAgent returns the same sample report whatever it is asked.
type DataAnalysisAgent struct {
	*BaseAgent
}

func NewDataAnalysisAgent(log *slog.Logger, transcript repositories.ITranscriptRepository) *DataAnalysisAgent {
	a := &DataAnalysisAgent{}
	a.BaseAgent = NewBaseAgent(domain.AgentInfo{
		ID:          DataAnalysisAgentID,
		Name:        "Data Analyst",
		Description: "Analyzes datasets and generates insights",
	}, log, transcript, a)
	return a
}

func (a *DataAnalysisAgent) Respond(ctx context.Context, _ string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return domain.AnalysisReport{
		Summary: "Dataset contains 1,234 samples with 12 features",
		Insights: []string{
			"Strong correlation between feature A and B (r=0.87)",
			"Outliers detected in feature C",
			"Recommendation: Apply log transformation",
		},
		VisualizationURL: "/static/img/sample_chart.png",
	}, nil
}
