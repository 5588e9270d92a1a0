package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"battletower/internal/eventbus"
)

const (
	// EnvBaseURL names the environment variable that supplies the listing service base URL
	EnvBaseURL = "POKEAPI_URL"

	DefaultBaseURL       = "https://pokeapi.co/api/v2"
	DefaultSpriteBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"
)

// ErrInvalid is returned by Validate when a setting is out of range
var ErrInvalid = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version int          `toml:"version"`
	API     APISettings  `toml:"api"`
	Form    FormSettings `toml:"form"`
	Log     LogSettings  `toml:"log"`
}

// APISettings configures the listing/detail service client
type APISettings struct {
	BaseURL       string   `toml:"base_url"`
	SpriteBaseURL string   `toml:"sprite_base_url"`
	Timeout       Duration `toml:"timeout"`
}

// FormSettings configures the registration form and team picker
type FormSettings struct {
	PageSize        int `toml:"page_size"`
	TeamSize        int `toml:"team_size"`
	ScrollThreshold int `toml:"scroll_threshold"` // rows from the bottom that trigger the next page
	ListHeight      int `toml:"list_height"`      // visible rows in the open picker
}

// LogSettings configures the rotating log file
type LogSettings struct {
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// Duration is a time.Duration that reads and writes as a string ("10s")
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigServiceAt(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns <user config dir>/battletower/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "battletower", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, writing defaults when the file is missing
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
		if err := cs.SaveToPath(cfg, cs.filePath); err != nil {
			return nil, err
		}
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:    cs.filePath,
			BaseURL: cfg.API.BaseURL,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Missing keys keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	logFile := "battletower.log"
	if cacheDir, err := os.UserCacheDir(); err == nil {
		logFile = filepath.Join(cacheDir, "battletower", "battletower.log")
	}

	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:       DefaultBaseURL,
			SpriteBaseURL: DefaultSpriteBaseURL,
			Timeout:       Duration{10 * time.Second},
		},
		Form: FormSettings{
			PageSize:        20,
			TeamSize:        4,
			ScrollThreshold: 2,
			ListHeight:      8,
		},
		Log: LogSettings{
			File:       logFile,
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}

// ApplyEnv overrides settings from the environment
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvBaseURL)); v != "" {
		c.API.BaseURL = v
	}
}

// Validate reports the first out-of-range setting
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.API.BaseURL) == "":
		return fmt.Errorf("%w: api.base_url is empty", ErrInvalid)
	case c.API.Timeout.Duration <= 0:
		return fmt.Errorf("%w: api.timeout must be positive", ErrInvalid)
	case c.Form.PageSize <= 0:
		return fmt.Errorf("%w: form.page_size must be positive", ErrInvalid)
	case c.Form.TeamSize <= 0:
		return fmt.Errorf("%w: form.team_size must be positive", ErrInvalid)
	case c.Form.ScrollThreshold < 0:
		return fmt.Errorf("%w: form.scroll_threshold must not be negative", ErrInvalid)
	case c.Form.ListHeight <= 0:
		return fmt.Errorf("%w: form.list_height must be positive", ErrInvalid)
	}
	return nil
}
