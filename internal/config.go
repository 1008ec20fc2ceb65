package internal

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"

	BackendMemory = "memory"
	BackendBadger = "badger"
)

type Config struct {
	AppEnv     string `env:"APP_ENV,default=development" validate:"oneof=development production testing"`
	AppName    string `env:"APP_NAME,default=ML Showcase" validate:"required"`
	AppVersion string `env:"APP_VERSION,default=0.0.1" validate:"required"`
	Host       string `env:"HOST,default=0.0.0.0"`
	Port       int    `env:"PORT,default=5949" validate:"gt=0,lte=65535"`
	LogLevel   string `env:"LOG_LEVEL" validate:"omitempty,oneof=DEBUG INFO WARN ERROR"`

	ModelDir        string `env:"MODEL_DIR,default=models" validate:"required"`
	SentimentModel  string `env:"SENTIMENT_MODEL,default=sentiment_model" validate:"required"`
	VectorizerModel string `env:"VECTORIZER_MODEL,default=tfidf_vectorizer" validate:"required"`
	ModelFallback   string `env:"MODEL_FALLBACK,default=mock" validate:"oneof=mock strict"`

	ResearchAgentDelay time.Duration `env:"RESEARCH_AGENT_DELAY,default=500ms" validate:"gte=0"`
	TranscriptBackend  string        `env:"TRANSCRIPT_BACKEND,default=memory" validate:"oneof=memory badger"`
	HistoryWindow      int           `env:"HISTORY_WINDOW,default=5" validate:"gt=0"`

	MaxContentLength int64         `env:"MAX_CONTENT_LENGTH,default=16777216" validate:"gt=0"`
	ReadTimeout      time.Duration `env:"READ_TIMEOUT,default=10s" validate:"gt=0"`
	WriteTimeout     time.Duration `env:"WRITE_TIMEOUT,default=30s" validate:"gt=0"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s" validate:"gt=0"`
}

// LoadConfig decodes the process environment and validates the result.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Level is LOG_LEVEL when set, otherwise WARN in production and DEBUG elsewhere.
func (c Config) Level() string {
	if c.LogLevel != "" {
		return c.LogLevel
	}
	if c.AppEnv == EnvProduction {
		return "WARN"
	}
	return "DEBUG"
}

func (c Config) Debug() bool {
	return c.Level() == "DEBUG"
}

func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
