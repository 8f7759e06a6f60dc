package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults for the two file paths of the html direction.
const (
	DefaultInput  = "presentation.pptx"
	DefaultOutput = "presentation.html"
)

// DefaultFile is the config file read when --config is not given.
const DefaultFile = "config.yaml"

type Config struct {
	Convert  ConvertConfig  `mapstructure:"convert"`
	Deck     DeckConfig     `mapstructure:"deck"`
	Watch    WatchConfig    `mapstructure:"watch"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	AI       AIConfig       `mapstructure:"ai"`
}

type ConvertConfig struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`
	// Title overrides the page title; empty uses the document title.
	Title string `mapstructure:"title"`
	Lang  string `mapstructure:"lang"`
}

type DeckConfig struct {
	Output string `mapstructure:"output"`
	// Source is a .yaml or .md deck file; empty builds Template.
	Source   string `mapstructure:"source"`
	Template string `mapstructure:"template"`
	Author   string `mapstructure:"author"`
}

type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

type AIConfig struct {
	ActiveProvider string                      `mapstructure:"active_provider"`
	Providers      map[string]ProviderSettings `mapstructure:"providers"`
}

type ProviderSettings struct {
	Key         string  `mapstructure:"key"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// Active returns the settings of the active provider.
func (c *AIConfig) Active() (ProviderSettings, bool) {
	p, ok := c.Providers[c.ActiveProvider]
	return p, ok
}

type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	Options  string `mapstructure:"options"`
}

// Enabled reports whether a conversion log database is configured.
func (c *DatabaseConfig) Enabled() bool {
	return c.URL != "" || c.Host != ""
}

func (c *DatabaseConfig) GetConnectStr() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	port := c.Port
	if port == "" {
		port = "5432"
	}

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, port, c.DBName, sslmode)

	if c.Options != "" {
		// space -> %20 is enough for the options values we pass
		connStr += "&options=" + strings.ReplaceAll(c.Options, " ", "%20")
	}

	return connStr
}

// mappings binds config keys to their environment variables.
var mappings = []struct {
	key, env string
}{
	{"convert.input", "SLIDEPRESS_INPUT"},
	{"convert.output", "SLIDEPRESS_OUTPUT"},
	{"convert.title", "SLIDEPRESS_TITLE"},
	{"convert.lang", "SLIDEPRESS_LANG"},
	{"deck.output", "SLIDEPRESS_DECK_OUTPUT"},
	{"deck.source", "SLIDEPRESS_DECK_SOURCE"},
	{"deck.template", "SLIDEPRESS_DECK_TEMPLATE"},
	{"deck.author", "SLIDEPRESS_AUTHOR"},
	{"watch.debounce", "SLIDEPRESS_WATCH_DEBOUNCE"},
	{"log.level", "LOG_LEVEL"},
	{"log.format", "LOG_FORMAT"},

	// Database
	{"database.url", "DB_URL"},
	{"database.host", "PG_HOST"},
	{"database.port", "PG_PORT"},
	{"database.user", "PG_USER"},
	{"database.password", "PG_PASSWORD"},
	{"database.dbname", "PG_DB"},
	{"database.sslmode", "PG_SSLMODE"},
	{"database.options", "PG_OPTIONS"},

	// AI
	{"ai.active_provider", "AI_PROVIDER"},
	{"ai.providers.gemini.key", "GEMINI_KEY"},
	{"ai.providers.gemini.model", "GEMINI_MODEL"},
}

// Load reads configuration from the optional file at path, from .env in the
// working directory and from the environment, in increasing precedence.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	// a missing .env is the normal case outside development
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()

	for _, m := range mappings {
		if err := v.BindEnv(m.key, m.env); err != nil {
			return nil, err
		}
	}

	v.SetDefault("convert.input", DefaultInput)
	v.SetDefault("convert.output", DefaultOutput)
	v.SetDefault("convert.lang", "en")
	v.SetDefault("deck.output", DefaultInput)
	v.SetDefault("deck.template", "default")
	v.SetDefault("watch.debounce", 500*time.Millisecond)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("ai.active_provider", "gemini")
	v.SetDefault("ai.providers.gemini.model", "gemini-1.5-flash")

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Watch.Debounce <= 0 {
		return nil, fmt.Errorf("watch.debounce must be positive, got %s", cfg.Watch.Debounce)
	}

	return &cfg, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
