//go:generate go run go.uber.org/mock/mockgen -source=artifact.go -destination=../mocks/mock_artifact_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"ml-showcase/ai"
	"ml-showcase/domain/mimetypes"
	"ml-showcase/errors"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

type IArtifactRepository interface {
	Load(name string) (ai.Artifact, error)
	List() ([]string, error)
}

// Format is a supported serialization suffix. Formats are tried in the order of Formats.
type Format struct {
	Ext    string
	decode func(data []byte, doc *artifactDocument) error
}

var Formats = []Format{
	{Ext: ".json", decode: func(data []byte, doc *artifactDocument) error { return json.Unmarshal(data, doc) }},
	{Ext: ".yaml", decode: func(data []byte, doc *artifactDocument) error { return yaml.Unmarshal(data, doc) }},
}

func supported(ext string) bool {
	return lo.ContainsBy(Formats, func(f Format) bool { return f.Ext == ext })
}

type artifactDocument struct {
	Kind     ai.Kind   `json:"kind" yaml:"kind" validate:"required,oneof=hashing_vectorizer logistic_regression"`
	Features int       `json:"features" yaml:"features"`
	Binary   bool      `json:"binary" yaml:"binary"`
	Weights  []float64 `json:"weights" yaml:"weights"`
	Bias     float64   `json:"bias" yaml:"bias"`
}

type vectorizerSpec struct {
	Features int `validate:"gt=0,lte=1048576"`
}

type regressionSpec struct {
	Weights []float64 `validate:"min=1,max=1048576"`
}

// ArtifactInfo describes a file of the models directory, supported or not.
type ArtifactInfo struct {
	Name      string
	Path      string
	Format    string
	Size      int64
	Supported bool
}

// ArtifactRepository reads model artifacts from a flat directory of
// {name}.{ext} files. It never writes.
type ArtifactRepository struct {
	dir string
	log *slog.Logger
}

func NewArtifactRepository(dir string, log *slog.Logger) ArtifactRepository {
	return ArtifactRepository{dir: dir, log: log}
}

func (r ArtifactRepository) Dir() string { return r.dir }

// Load resolves name to an artifact, trying every format in priority order.
// It returns errors.ErrArtifactMissing when no file exists for name, and
// errors.ErrUnsupportedFormat when files exist but none has a supported suffix.
func (r ArtifactRepository) Load(name string) (ai.Artifact, error) {
	if name == "" || filepath.Base(name) != name || strings.HasPrefix(name, ".") {
		return nil, fmt.Errorf("%w: model name %q", errors.ErrInvalidInput, name)
	}

	for _, format := range Formats {
		path := filepath.Join(r.dir, name+format.Ext)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		r.log.Debug("Decoding artifact", "name", name, "path", path, "format", format.Ext)
		return r.decode(path, format)
	}

	infos, err := r.Describe()
	if err != nil {
		return nil, err
	}
	for _, info := range infos {
		if info.Name == name {
			return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFormat, info.Format)
		}
	}
	return nil, fmt.Errorf("%w: %s", errors.ErrArtifactMissing, name)
}

// Decode reads the very file described by info, whatever other formats
// exist for the same name.
func (r ArtifactRepository) Decode(info ArtifactInfo) (ai.Artifact, error) {
	format, ok := lo.Find(Formats, func(f Format) bool { return f.Ext == info.Format })
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFormat, info.Format)
	}
	return r.decode(info.Path, format)
}

func (r ArtifactRepository) decode(path string, format Format) (ai.Artifact, error) {
	detected, err := mimetypes.Sniff(path)
	if err != nil {
		return nil, err
	}
	if !mimetypes.IsText(detected) {
		return nil, fmt.Errorf("%w: %s has content type %s", errors.ErrInvalidArtifact, filepath.Base(path), detected)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc artifactDocument
	if err = format.decode(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrInvalidArtifact, filepath.Base(path), err)
	}
	if err = validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrInvalidArtifact, filepath.Base(path), err)
	}

	switch doc.Kind {
	case ai.KindHashingVectorizer:
		if err = validate.Struct(vectorizerSpec{Features: doc.Features}); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", errors.ErrInvalidArtifact, filepath.Base(path), err)
		}
		return ai.NewHashingVectorizer(doc.Features, doc.Binary), nil
	default:
		if err = validate.Struct(regressionSpec{Weights: doc.Weights}); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", errors.ErrInvalidArtifact, filepath.Base(path), err)
		}
		return ai.NewLogisticRegression(doc.Weights, doc.Bias), nil
	}
}

// List returns the names of artifacts with a supported suffix, in directory
// order. A name present in several formats is listed once.
func (r ArtifactRepository) List() ([]string, error) {
	infos, err := r.Describe()
	if err != nil {
		return nil, err
	}
	supportedInfos := lo.Filter(infos, func(info ArtifactInfo, _ int) bool { return info.Supported })
	return lo.Uniq(lo.Map(supportedInfos, func(info ArtifactInfo, _ int) string { return info.Name })), nil
}

// Describe enumerates every regular file of the models directory.
// A missing directory is reported as empty.
func (r ArtifactRepository) Describe() ([]ArtifactInfo, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ArtifactInfo{}, nil
		}
		return nil, err
	}

	infos := make([]ArtifactInfo, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext == "" {
			continue
		}
		var size int64
		if info, err := entry.Info(); err == nil {
			size = info.Size()
		}
		infos = append(infos, ArtifactInfo{
			Name:      strings.TrimSuffix(entry.Name(), ext),
			Path:      filepath.Join(r.dir, entry.Name()),
			Format:    ext,
			Size:      size,
			Supported: supported(ext),
		})
	}
	return infos, nil
}
