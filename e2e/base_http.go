package e2e

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"ml-showcase/internal"

	"github.com/gookit/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type BaseHTTPSuite struct {
	suite.Suite
	Config Config

	client *http.Client
	server *httptest.Server
	app    *internal.App
}

// SetupSuite loads the environment configuration and, without a target URL,
// starts the whole application in-process on an empty models directory.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.client = &http.Client{Timeout: 10 * time.Second}

	if s.Config.BaseURL != "" {
		return
	}
	config := internal.Config{
		AppEnv:            internal.EnvTesting,
		AppName:           "ML Showcase",
		AppVersion:        "0.0.1",
		ModelDir:          s.T().TempDir(),
		SentimentModel:    "sentiment_model",
		VectorizerModel:   "tfidf_vectorizer",
		ModelFallback:     "mock",
		TranscriptBackend: internal.BackendBadger,
		HistoryWindow:     5,
		MaxContentLength:  16 * 1024 * 1024,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      5 * time.Second,
		ShutdownTimeout:   time.Second,
	}
	s.app, err = internal.NewApp(context.Background(), logs.GetLoggerFromLevel(slog.LevelWarn), config)
	s.Require().NoError(err)
	s.server = httptest.NewServer(s.app.Server.Handler())
	s.Config.BaseURL = s.server.URL
}

func (s *BaseHTTPSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.app != nil {
		s.app.Close()
	}
}

// Step prints a colorized header before running fn as a subtest.
func (s *BaseHTTPSuite) Step(name string, fn func()) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	s.Run(name, fn)
}

// Call sends body as JSON when not nil and decodes the JSON answer into out when not nil.
func (s *BaseHTTPSuite) Call(method, path string, body any, out any) int {
	var reader io.Reader
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequest(method, strings.TrimSuffix(s.Config.BaseURL, "/")+path, reader)
	s.Require().NoError(err)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	response, err := s.client.Do(request)
	s.Require().NoError(err)
	defer response.Body.Close()
	raw, err := io.ReadAll(response.Body)
	s.Require().NoError(err)

	logBuilder := strings.Builder{}
	fmt.Fprintf(&logBuilder, "HTTP %s %s [%d] in %v", method, path, response.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		fmt.Fprintf(&logBuilder, "\nREQUEST:\n%s\nRESPONSE:\n%s", payload, raw)
	}
	s.T().Log(logBuilder.String())

	if out != nil {
		s.Require().NoError(json.Unmarshal(raw, out), string(raw))
	}
	return response.StatusCode
}
