package services

import (
	"ml-showcase/agents"
	"ml-showcase/domain"
)

// Classifier is the single-text prediction the sentiment service delegates to.
type Classifier interface {
	Predict(text string) (domain.PredictionResult, error)
}

// AgentDirectory resolves agents by id. agents.Registry implements it.
type AgentDirectory interface {
	Get(id domain.AgentID) (agents.Agent, error)
	List() []domain.AgentInfo
}

// ModelCatalog is what the model registry exposes about its artifacts.
type ModelCatalog interface {
	List() ([]string, error)
	Cached() []string
}
