package internal

import (
	"context"
	"fmt"
	"log/slog"

	"ml-showcase/agents"
	"ml-showcase/ai"
	"ml-showcase/infrastructure/http/server"
	"ml-showcase/observability"
	"ml-showcase/repositories"
	"ml-showcase/runtime"
	"ml-showcase/services"

	"github.com/dgraph-io/badger/v4"
)

// App is the fully wired showcase: registries, agents, services and the HTTP server.
type App struct {
	Server     *server.Server
	Registry   *runtime.ModelRegistry
	Agents     *agents.Registry
	Monitoring *observability.MonitoringManager

	db *badger.DB
}

// NewApp builds every component from config. Close must be called to release
// the transcript store.
func NewApp(ctx context.Context, log *slog.Logger, config Config) (*App, error) {
	app := &App{Monitoring: observability.NewMonitoringManager(log)}

	transcripts := repositories.TranscriptFactory(repositories.MemoryTranscripts)
	if config.TranscriptBackend == BackendBadger {
		// Nothing is written to disk: transcripts live as long as the process.
		db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
		if err != nil {
			return nil, fmt.Errorf("transcript store opening failed: %w", err)
		}
		app.db = db
		transcripts = repositories.BadgerTranscripts(db, log)
	}

	artifacts := repositories.NewArtifactRepository(config.ModelDir, log)
	app.Registry = runtime.NewModelRegistry(log, artifacts, runtime.FallbackStrategy(config.ModelFallback))
	classifier := ai.NewSentimentClassifier(ctx, log, app.Registry, config.VectorizerModel, config.SentimentModel, nil)

	agentRegistry, err := agents.DefaultRegistry(log, transcripts, config.ResearchAgentDelay)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("agents setup failed: %w", err)
	}
	app.Agents = agentRegistry

	app.Server = server.NewServer(log, server.Config{
		AppName:          config.AppName,
		AppVersion:       config.AppVersion,
		Environment:      config.AppEnv,
		MaxContentLength: config.MaxContentLength,
		ReadTimeout:      config.ReadTimeout,
		WriteTimeout:     config.WriteTimeout,
		ShutdownTimeout:  config.ShutdownTimeout,
	},
		services.NewSentimentService(log, classifier),
		services.NewChatService(log, agentRegistry, config.HistoryWindow),
		services.NewModelService(app.Registry),
		app.Monitoring,
	)

	if config.Debug() && app.db != nil {
		app.Server.WithDebug(NewInspector(app.db, repositories.TranscriptKeyPrefix, TranscriptMapper, app.stats))
		log.Debug("Transcript inspector mounted", "path", "/debug/transcripts")
	}
	return app, nil
}

func (a *App) stats() map[string]any {
	latest := a.Monitoring.GetLatest()
	return map[string]any{
		"agents":        len(a.Agents.List()),
		"cached_models": len(a.Registry.Cached()),
		"requests":      latest.Requests,
		"uptime":        fmt.Sprintf("%.0fs", latest.UptimeSeconds),
	}
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
