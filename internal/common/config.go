package common

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/auspexlabs/auspex/internal/interfaces"
)

// Config represents the application configuration
type Config struct {
	Environment string         `toml:"environment"` // "development" or "production"
	Server      ServerConfig   `toml:"server"`
	Storage     StorageConfig  `toml:"storage"`
	Logging     LoggingConfig  `toml:"logging"`
	NewsAPI     NewsAPIConfig  `toml:"newsapi"`
	Registry    RegistryConfig `toml:"registry"`
	LLM         LLMConfig      `toml:"llm"`
	Gemini      GeminiConfig   `toml:"gemini"`
	Claude      ClaudeConfig   `toml:"claude"`
	OpenAI      OpenAIConfig   `toml:"openai"`
	Ollama      OllamaConfig   `toml:"ollama"`
	Signals     SignalsConfig  `toml:"signals"`
	Pipeline    PipelineConfig `toml:"pipeline"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

// NewsAPIConfig configures the news provider used by the fetch pipeline.
type NewsAPIConfig struct {
	BaseURL  string          `toml:"base_url"`
	APIKey   string          `toml:"api_key"` // fallback when not present in KV storage
	Country  string          `toml:"country"`
	Category string          `toml:"category"`
	PageSize int             `toml:"page_size"`
	Queries  []HeadlineQuery `toml:"queries"` // additional keyword/country queries per run
}

// HeadlineQuery is an extra configured top-headlines request.
type HeadlineQuery struct {
	Query    string `toml:"query"`
	Country  string `toml:"country"`
	PageSize int    `toml:"page_size"`
}

// RegistrySource is one downloadable exchange symbol directory.
type RegistrySource struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

// RegistryConfig configures the listed-ticker registry.
type RegistryConfig struct {
	Sources  []RegistrySource `toml:"sources"`
	CacheTTL time.Duration    `toml:"cache_ttl"` // snapshot freshness window
}

// LLMConfig selects the sentiment oracle backend.
type LLMConfig struct {
	Provider       string        `toml:"provider" validate:"oneof=gemini claude openai ollama"`
	RequestTimeout time.Duration `toml:"request_timeout"` // hard per-call timeout
}

type GeminiConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	Temperature float32 `toml:"temperature"`
}

type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	MaxTokens   int     `toml:"max_tokens"`
	Temperature float32 `toml:"temperature"`
}

type OpenAIConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

type OllamaConfig struct {
	URL   string `toml:"url"`
	Model string `toml:"model"`
}

// SignalsConfig configures signal extraction.
type SignalsConfig struct {
	ConfidenceThreshold int `toml:"confidence_threshold" validate:"min=1,max=5"`
}

// PipelineConfig configures the persisted document boundary between the
// fetch stage and the analysis stage.
type PipelineConfig struct {
	DataDir      string `toml:"data_dir"`
	CleanedFile  string `toml:"cleaned_file"`
	AnalyzedFile string `toml:"analyzed_file"`
	Schedule     string `toml:"schedule"` // cron schedule for serve-mode fetch; empty disables
}

// NewDefaultConfig returns the built-in defaults. Config files, environment
// variables and CLI flags override these in that order.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8585,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data/auspex.db",
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
		NewsAPI: NewsAPIConfig{
			BaseURL:  "https://newsapi.org/v2",
			Country:  "us",
			Category: "business",
			PageSize: 100,
		},
		Registry: RegistryConfig{
			Sources: []RegistrySource{
				{Name: "NASDAQ", URL: "https://www.nasdaqtrader.com/dynamic/SymDir/nasdaqlisted.txt"},
				{Name: "NYSE", URL: "https://www.nasdaqtrader.com/dynamic/SymDir/otherlisted.txt"},
			},
			CacheTTL: 24 * time.Hour,
		},
		LLM: LLMConfig{
			Provider:       "ollama",
			RequestTimeout: 120 * time.Second,
		},
		Gemini: GeminiConfig{
			Model:       "gemini-1.5-flash",
			Temperature: 0.2,
		},
		Claude: ClaudeConfig{
			Model:       "claude-sonnet-4-20250514",
			MaxTokens:   1024,
			Temperature: 0.2,
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Ollama: OllamaConfig{
			URL:   "http://localhost:11434",
			Model: "llama3.1",
		},
		Signals: SignalsConfig{
			ConfidenceThreshold: 3,
		},
		Pipeline: PipelineConfig{
			DataDir:      "./data",
			CleanedFile:  "preprocessed_articles.json",
			AnalyzedFile: "analyzed_articles.json",
		},
	}
}

var configValidator = validator.New()

// LoadFromFiles loads configuration with priority: default -> file1 -> file2 -> ... -> env.
// Later files override earlier files; environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := configValidator.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("AUSPEX_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if port := os.Getenv("AUSPEX_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("AUSPEX_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	if badgerPath := os.Getenv("AUSPEX_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}

	if level := os.Getenv("AUSPEX_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if provider := os.Getenv("AUSPEX_LLM_PROVIDER"); provider != "" {
		config.LLM.Provider = provider
	}

	if dataDir := os.Getenv("AUSPEX_DATA_DIR"); dataDir != "" {
		config.Pipeline.DataDir = dataDir
	}

	// Provider credentials follow the conventional variable names
	if key := os.Getenv("NEWS_API_KEY"); key != "" {
		config.NewsAPI.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		config.Claude.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		config.OpenAI.APIKey = key
	}
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority)
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port != 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// ResolveAPIKey resolves an API key with KV-storage-first priority and a
// config fallback. Returns an error when neither source has a value; callers
// treat that as a fatal configuration error for the run.
func ResolveAPIKey(ctx context.Context, kvStorage interfaces.KeyValueStorage, name string, configFallback string) (string, error) {
	if kvStorage != nil {
		if value, err := kvStorage.Get(ctx, name); err == nil && value != "" {
			return value, nil
		}
	}
	if configFallback != "" {
		return configFallback, nil
	}
	return "", fmt.Errorf("API key %q not found in storage or config", name)
}
