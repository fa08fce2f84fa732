package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"

	"llmsbrowse/internal/eventbus"
)

const (
	MatchSubstring = "substring"
	MatchFuzzy     = "fuzzy"

	ClipboardAuto   = "auto"
	ClipboardSystem = "system"
	ClipboardOSC52  = "osc52"

	DefaultPageSize  = 12
	DefaultColumns   = 3
	DefaultCopyAckMS = 2000
)

// Config represents the application configuration
type Config struct {
	Version   int            `toml:"version"`
	PageSize  int            `toml:"page_size"`
	Columns   int            `toml:"columns"`
	CopyAckMS int            `toml:"copy_ack_ms"`
	Match     string         `toml:"match"`
	Clipboard string         `toml:"clipboard"`
	Prompts   SourceSettings `toml:"prompts"`
	Gallery   SourceSettings `toml:"gallery"`
	UI        UISettings     `toml:"ui"`
	Log       LogSettings    `toml:"log"`
}

// SourceSettings configures one browsable collection
type SourceSettings struct {
	Source string `toml:"source"`
	Wrap   bool   `toml:"wrap"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	RenderMarkdown bool   `toml:"render_markdown"`
	GlamourStyle   string `toml:"glamour_style"`
	Mouse          bool   `toml:"mouse"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// CopyAckDuration is how long a copy acknowledgment stays visible
func (c *Config) CopyAckDuration() time.Duration {
	return time.Duration(c.CopyAckMS) * time.Millisecond
}

// Normalize replaces out-of-range values with defaults
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.PageSize < 1 {
		c.PageSize = def.PageSize
	}
	if c.Columns < 1 {
		c.Columns = def.Columns
	}
	if c.CopyAckMS <= 0 {
		c.CopyAckMS = def.CopyAckMS
	}
	switch c.Match {
	case MatchSubstring, MatchFuzzy:
	default:
		c.Match = def.Match
	}
	switch c.Clipboard {
	case ClipboardAuto, ClipboardSystem, ClipboardOSC52:
	default:
		c.Clipboard = def.Clipboard
	}
	if c.UI.GlamourStyle == "" {
		c.UI.GlamourStyle = def.UI.GlamourStyle
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
	Exists() bool
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "llmsbrowse", "config.toml")
}

// NewConfigService creates a config service for path, or the default location when empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

func (cs *configService) Exists() bool {
	_, err := os.Stat(cs.filePath)
	return err == nil
}

// Load loads the configuration from file, falling back to defaults when missing
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if !cs.Exists() {
		cfg = DefaultConfig()
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			PageSize: cfg.PageSize,
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
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML config data on top of the defaults
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if !errors.As(err, &strict) {
			return nil, err
		}
		log.Warn().Str("details", strict.String()).Msg("ignoring unknown config keys")

		cfg = DefaultConfig()
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:   1,
		PageSize:  DefaultPageSize,
		Columns:   DefaultColumns,
		CopyAckMS: DefaultCopyAckMS,
		Match:     MatchSubstring,
		Clipboard: ClipboardAuto,
		Prompts: SourceSettings{
			Source: filepath.Join("data", "prompts.json"),
			Wrap:   false,
		},
		Gallery: SourceSettings{
			Source: filepath.Join("data", "screenshots.json"),
			Wrap:   true,
		},
		UI: UISettings{
			RenderMarkdown: true,
			GlamourStyle:   "dark",
			Mouse:          true,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}
