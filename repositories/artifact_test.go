package repositories

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"ml-showcase/ai"
	"ml-showcase/errors"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, dir, filename, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o600))
}

func TestArtifactRepository_Load_Json(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	repository := NewArtifactRepository(dir, logs.GetLoggerFromLevel(slog.LevelDebug))
	writeArtifact(t, dir, "sentiment_model.json", `{"kind":"logistic_regression","weights":[0.5,-0.5],"bias":0.1}`)

	artifact, err := repository.Load("sentiment_model")
	req.NoError(err)
	model, ok := artifact.(*ai.LogisticRegression)
	req.True(ok)
	req.Equal(2, model.Width())
}

func TestArtifactRepository_Load_Yaml(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	repository := NewArtifactRepository(dir, logs.GetLoggerFromLevel(slog.LevelDebug))
	writeArtifact(t, dir, "tfidf_vectorizer.yaml", "kind: hashing_vectorizer\nfeatures: 64\nbinary: true\n")

	artifact, err := repository.Load("tfidf_vectorizer")
	req.NoError(err)
	vectorizer, ok := artifact.(*ai.HashingVectorizer)
	req.True(ok)
	req.Equal(64, vectorizer.Size())
}

func TestArtifactRepository_Load_JsonBeforeYaml(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	repository := NewArtifactRepository(dir, logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given the same name in both formats
	writeArtifact(t, dir, "vec.json", `{"kind":"hashing_vectorizer","features":16}`)
	writeArtifact(t, dir, "vec.yaml", "kind: hashing_vectorizer\nfeatures: 32\n")

	// Then the json one wins
	artifact, err := repository.Load("vec")
	req.NoError(err)
	req.Equal(16, artifact.(*ai.HashingVectorizer).Size())
}

func TestArtifactRepository_Decode_ReadsEachFormat(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	repository := NewArtifactRepository(dir, logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given the same name in both formats, with different widths
	writeArtifact(t, dir, "vec.json", `{"kind":"hashing_vectorizer","features":16}`)
	writeArtifact(t, dir, "vec.yaml", "kind: hashing_vectorizer\nfeatures: 32\n")
	writeArtifact(t, dir, "vec.pkl", "binary")
	infos, err := repository.Describe()
	req.NoError(err)

	// When decoding every described file
	widths := make(map[string]int)
	for _, info := range infos {
		artifact, err := repository.Decode(info)
		if !info.Supported {
			req.ErrorIs(err, errors.ErrUnsupportedFormat)
			continue
		}
		req.NoError(err)
		widths[info.Format] = artifact.(*ai.HashingVectorizer).Size()
	}

	// Then each row reflects its own file
	req.Equal(map[string]int{".json": 16, ".yaml": 32}, widths)
}

func TestArtifactRepository_Load_Errors(t *testing.T) {
	dir := t.TempDir()
	repository := NewArtifactRepository(dir, logs.GetLoggerFromLevel(slog.LevelDebug))
	writeArtifact(t, dir, "legacy.pkl", "\x80\x04\x95\x00\x00\x00")
	writeArtifact(t, dir, "broken.json", `{"kind":`)
	writeArtifact(t, dir, "unknown.json", `{"kind":"random_forest"}`)
	writeArtifact(t, dir, "empty_weights.json", `{"kind":"logistic_regression","weights":[]}`)
	writeArtifact(t, dir, "zero_features.yaml", "kind: hashing_vectorizer\nfeatures: 0\n")
	writeArtifact(t, dir, "binary.json", "\x00\x01\x02\x03\xff\xfe\x00\x00")

	tests := []struct {
		name    string
		model   string
		wantErr error
	}{
		{"Unsupported suffix", "legacy", errors.ErrUnsupportedFormat},
		{"Missing artifact", "nothing_here", errors.ErrArtifactMissing},
		{"Malformed json", "broken", errors.ErrInvalidArtifact},
		{"Unknown kind", "unknown", errors.ErrInvalidArtifact},
		{"Empty weights", "empty_weights", errors.ErrInvalidArtifact},
		{"Zero features", "zero_features", errors.ErrInvalidArtifact},
		{"Binary content behind a json suffix", "binary", errors.ErrInvalidArtifact},
		{"Path traversal", "../etc/passwd", errors.ErrInvalidInput},
		{"Empty name", "", errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repository.Load(tt.model)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestArtifactRepository_List(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	repository := NewArtifactRepository(dir, logs.GetLoggerFromLevel(slog.LevelDebug))
	writeArtifact(t, dir, "a.json", `{}`)
	writeArtifact(t, dir, "a.yaml", "kind: x\n")
	writeArtifact(t, dir, "b.yaml", "kind: x\n")
	writeArtifact(t, dir, "c.pkl", "x")
	writeArtifact(t, dir, ".hidden.json", `{}`)
	req.NoError(os.Mkdir(filepath.Join(dir, "nested.json"), 0o700))

	first, err := repository.List()
	req.NoError(err)
	req.ElementsMatch([]string{"a", "b"}, first)

	// Then listing is stable without filesystem changes
	second, err := repository.List()
	req.NoError(err)
	req.ElementsMatch(first, second)
}

func TestArtifactRepository_List_MissingDirectory(t *testing.T) {
	req := require.New(t)
	repository := NewArtifactRepository(filepath.Join(t.TempDir(), "absent"), slog.Default())

	names, err := repository.List()
	req.NoError(err)
	req.Empty(names)
}

func TestArtifactRepository_Describe(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	repository := NewArtifactRepository(dir, slog.Default())
	writeArtifact(t, dir, "model.json", `{"kind":"logistic_regression","weights":[1]}`)
	writeArtifact(t, dir, "model.pkl", "x")

	infos, err := repository.Describe()
	req.NoError(err)
	req.Len(infos, 2)
	for _, info := range infos {
		req.Equal("model", info.Name)
		req.Equal(info.Format == ".json", info.Supported)
		req.Positive(info.Size)
	}
}
