package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brettbedarf/pycommander/internal/util"
	"gopkg.in/yaml.v3"
)

// CLI verbosity values accepted by ConfigOverride.LogLvl
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl       = util.InfoLevel
	DefaultListenAddr   = "127.0.0.1:9002"
	DefaultHistoryLimit = 500
	DefaultMaxSessions  = 1000
	DefaultSessionTTL   = 24 * time.Hour

	DefaultAIBaseURL   = "https://api.openai.com/v1"
	DefaultAIModel     = "gpt-4o-mini"
	DefaultAITimeout   = 30 * time.Second
	DefaultAIMaxTokens = 128

	// APIKeyEnv is consulted when no API key is configured
	APIKeyEnv = "OPENAI_API_KEY"
)

// Config contains runtime configuration values for the terminal server.
type Config struct {
	LogLvl       util.LogLevel
	ListenAddr   string        // host:port for the HTTP UI (Default 127.0.0.1:9002)
	SeedFile     string        // Optional nodes file replacing the default tree
	HistoryLimit int           // Max commands remembered per session (Default 500)
	MaxSessions  int           // Max live sessions; the least recently used is evicted (Default 1000, 0 is unbounded)
	SessionTTL   time.Duration // Idle time after which a session is dropped (Default 24h, 0 never expires)
	AI           AIConfig
}

// AIConfig configures the natural language to command translator.
// An empty APIKey disables translation.
type AIConfig struct {
	BaseURL   string        // OpenAI compatible API root (Default https://api.openai.com/v1)
	Model     string        // Chat model name (Default gpt-4o-mini)
	APIKey    string        // Bearer token; falls back to $OPENAI_API_KEY
	Timeout   time.Duration // Per request timeout (Default 30s)
	MaxTokens int           // Completion token cap (Default 128)
}

// Enabled reports whether a translator can be built from this config
func (c *AIConfig) Enabled() bool {
	return c.APIKey != ""
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	// LogLvl is CLI style verbosity 1 (error) .. 5 (trace)
	LogLvl       *int      `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	ListenAddr   *string   `yaml:"listen_addr,omitempty" json:"listen_addr,omitempty"`
	SeedFile     *string   `yaml:"seed_file,omitempty" json:"seed_file,omitempty"`
	HistoryLimit *int      `yaml:"history_limit,omitempty" json:"history_limit,omitempty"`
	MaxSessions  *int      `yaml:"max_sessions,omitempty" json:"max_sessions,omitempty"`
	SessionTTL   *Duration `yaml:"session_ttl,omitempty" json:"session_ttl,omitempty"`

	AIBaseURL   *string   `yaml:"ai_base_url,omitempty" json:"ai_base_url,omitempty"`
	AIModel     *string   `yaml:"ai_model,omitempty" json:"ai_model,omitempty"`
	AIAPIKey    *string   `yaml:"ai_api_key,omitempty" json:"ai_api_key,omitempty"`
	AITimeout   *Duration `yaml:"ai_timeout,omitempty" json:"ai_timeout,omitempty"`
	AIMaxTokens *int      `yaml:"ai_max_tokens,omitempty" json:"ai_max_tokens,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:       DefaultLogLvl,
		ListenAddr:   DefaultListenAddr,
		HistoryLimit: DefaultHistoryLimit,
		MaxSessions:  DefaultMaxSessions,
		SessionTTL:   DefaultSessionTTL,
		AI: AIConfig{
			BaseURL:   DefaultAIBaseURL,
			Model:     DefaultAIModel,
			Timeout:   DefaultAITimeout,
			MaxTokens: DefaultAIMaxTokens,
		},
	}
}

// NewConfig creates a Config from defaults with override applied on top.
// A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = util.VerboseToLevel(*override.LogLvl)
	}
	if override.ListenAddr != nil {
		c.ListenAddr = *override.ListenAddr
	}
	if override.SeedFile != nil {
		c.SeedFile = *override.SeedFile
	}
	if override.HistoryLimit != nil {
		c.HistoryLimit = *override.HistoryLimit
	}
	if override.MaxSessions != nil {
		c.MaxSessions = *override.MaxSessions
	}
	if override.SessionTTL != nil {
		c.SessionTTL = time.Duration(*override.SessionTTL)
	}
	if override.AIBaseURL != nil {
		c.AI.BaseURL = *override.AIBaseURL
	}
	if override.AIModel != nil {
		c.AI.Model = *override.AIModel
	}
	if override.AIAPIKey != nil {
		c.AI.APIKey = *override.AIAPIKey
	}
	if override.AITimeout != nil {
		c.AI.Timeout = time.Duration(*override.AITimeout)
	}
	if override.AIMaxTokens != nil {
		c.AI.MaxTokens = *override.AIMaxTokens
	}
}

// ApplyEnv fills the API key from the environment when none was configured
func (c *Config) ApplyEnv() {
	if c.AI.APIKey == "" {
		c.AI.APIKey = os.Getenv(APIKeyEnv)
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}
