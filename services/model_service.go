//go:generate go run go.uber.org/mock/mockgen -source=model_service.go -destination=../mocks/mock_model_service.go -package=mocks
package services

import (
	"ml-showcase/domain"

	"github.com/samber/lo"
)

type IModelService interface {
	List() ([]string, error)
	Gallery() ([]domain.ModelInfo, error)
	Cached() []string
}

type ModelService struct {
	catalog ModelCatalog
}

func NewModelService(catalog ModelCatalog) *ModelService {
	return &ModelService{catalog: catalog}
}

// List returns the names of the artifacts available on disk.
func (s *ModelService) List() ([]string, error) {
	names, err := s.catalog.List()
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Gallery describes every available artifact for the gallery page.
func (s *ModelService) Gallery() ([]domain.ModelInfo, error) {
	names, err := s.List()
	if err != nil {
		return nil, err
	}
	cached := s.catalog.Cached()
	return lo.Map(names, func(name string, _ int) domain.ModelInfo {
		return domain.ModelInfo{
			Name:        name,
			Description: "Trained on custom dataset",
			Accuracy:    "N/A",
			Cached:      lo.Contains(cached, name),
		}
	}), nil
}

func (s *ModelService) Cached() []string {
	return s.catalog.Cached()
}
