package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server    ServerConfig   `yaml:"server" mapstructure:"server"`
	Log       LogConfig      `yaml:"log" mapstructure:"log"`
	Model     ModelConfig    `yaml:"model" mapstructure:"model"`
	Anthropic APIKeyConfig   `yaml:"anthropic" mapstructure:"anthropic"`
	OpenAI    APIKeyConfig   `yaml:"openai" mapstructure:"openai"`
	Analysis  AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Deck      DeckConfig     `yaml:"deck" mapstructure:"deck"`
}

type ServerConfig struct {
	Port              int      `yaml:"port" mapstructure:"port"`
	CORSOrigins       []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	RateLimitRPS      float64  `yaml:"rate_limit_rps" mapstructure:"rate_limit_rps"`
	RateLimitBurst    int      `yaml:"rate_limit_burst" mapstructure:"rate_limit_burst"`
	TrustProxyHeaders bool     `yaml:"trust_proxy_headers" mapstructure:"trust_proxy_headers"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ModelConfig selects the language model behind live analyses.
type ModelConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"`
	Name      string `yaml:"name" mapstructure:"name"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
}

type APIKeyConfig struct {
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
}

type AnalysisConfig struct {
	DemoDelay     time.Duration `yaml:"demo_delay" mapstructure:"demo_delay"`
	ParseMissMode string        `yaml:"parse_miss_mode" mapstructure:"parse_miss_mode"`
	StrictTotals  bool          `yaml:"strict_totals" mapstructure:"strict_totals"`
}

type DeckConfig struct {
	MaxBytes      int64  `yaml:"max_bytes" mapstructure:"max_bytes"`
	PdfToTextPath string `yaml:"pdftotext_path" mapstructure:"pdftotext_path"`
}

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

var defaultModels = map[string]string{
	ProviderAnthropic: "claude-sonnet-4-20250514",
	ProviderOpenAI:    "gpt-4o",
}

// APIKey returns the credential for the selected provider. Blank means no
// model is configured.
func (c *Config) APIKey() string {
	if c.Model.Provider == ProviderOpenAI {
		return c.OpenAI.APIKey
	}
	return c.Anthropic.APIKey
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	if _, ok := defaultModels[c.Model.Provider]; !ok {
		return eris.Errorf("config: unknown model.provider %q", c.Model.Provider)
	}
	switch c.Analysis.ParseMissMode {
	case "live", "demo", "error":
	default:
		return eris.Errorf("config: unknown analysis.parse_miss_mode %q", c.Analysis.ParseMissMode)
	}
	if c.Deck.MaxBytes <= 0 {
		return eris.New("config: deck.max_bytes must be positive")
	}
	if c.Server.RateLimitRPS <= 0 || c.Server.RateLimitBurst <= 0 {
		return eris.New("config: server.rate_limit_rps and server.rate_limit_burst must be positive")
	}
	return nil
}

// Load reads configuration from file and environment. An empty path looks
// for config.yaml in the working directory and tolerates its absence.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Environment
	v.SetEnvPrefix("SEEDCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("anthropic.api_key", "SEEDCHECK_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"); err != nil {
		return nil, eris.Wrap(err, "config: bind anthropic key")
	}
	if err := v.BindEnv("openai.api_key", "SEEDCHECK_OPENAI_API_KEY", "OPENAI_API_KEY"); err != nil {
		return nil, eris.Wrap(err, "config: bind openai key")
	}

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.rate_limit_rps", 1)
	v.SetDefault("server.rate_limit_burst", 5)
	v.SetDefault("server.trust_proxy_headers", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("model.provider", ProviderAnthropic)
	v.SetDefault("model.name", "")
	v.SetDefault("model.max_tokens", 4000)
	v.SetDefault("model.base_url", "")
	v.SetDefault("analysis.demo_delay", "3s")
	v.SetDefault("analysis.parse_miss_mode", "live")
	v.SetDefault("analysis.strict_totals", false)
	v.SetDefault("deck.max_bytes", 20<<20)
	v.SetDefault("deck.pdftotext_path", "pdftotext")

	// Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	cfg.Model.Provider = strings.ToLower(strings.TrimSpace(cfg.Model.Provider))
	if cfg.Model.Name == "" {
		cfg.Model.Name = defaultModels[cfg.Model.Provider]
	}
	cfg.Anthropic.APIKey = strings.TrimSpace(cfg.Anthropic.APIKey)
	cfg.OpenAI.APIKey = strings.TrimSpace(cfg.OpenAI.APIKey)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
