package services

import (
	"fmt"
	"testing"

	"ml-showcase/domain"

	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	names  []string
	cached []string
	err    error
}

func (f fakeCatalog) List() ([]string, error) { return f.names, f.err }
func (f fakeCatalog) Cached() []string        { return f.cached }

func TestModelService_List(t *testing.T) {
	req := require.New(t)

	// Given an empty models directory
	service := NewModelService(fakeCatalog{})

	// When listing
	names, err := service.List()

	// Then an empty, non nil list is returned
	req.NoError(err)
	req.NotNil(names)
	req.Empty(names)
}

func TestModelService_Gallery(t *testing.T) {
	req := require.New(t)

	// Given two artifacts, one of them already loaded
	service := NewModelService(fakeCatalog{
		names:  []string{"sentiment_model", "tfidf_vectorizer"},
		cached: []string{"tfidf_vectorizer"},
	})

	// When building the gallery
	gallery, err := service.Gallery()

	// Then every artifact has a card
	req.NoError(err)
	req.Equal([]domain.ModelInfo{
		{Name: "sentiment_model", Description: "Trained on custom dataset", Accuracy: "N/A"},
		{Name: "tfidf_vectorizer", Description: "Trained on custom dataset", Accuracy: "N/A", Cached: true},
	}, gallery)
}

func TestModelService_Gallery_Error(t *testing.T) {
	req := require.New(t)

	// Given an unreadable models directory
	service := NewModelService(fakeCatalog{err: fmt.Errorf("permission denied")})

	// When building the gallery
	_, err := service.Gallery()

	// Then the failure is surfaced
	req.Error(err)
}
