package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rebelice/lazystay/internal/models"
	"github.com/spf13/viper"
)

const appName = "lazystay"

// Config holds all application configuration
type Config struct {
	General  GeneralConfig         `mapstructure:"general"`
	UI       UIConfig              `mapstructure:"ui"`
	Data     DataConfig            `mapstructure:"data"`
	Database models.DatabaseConfig `mapstructure:"database"`
	Store    StoreConfig           `mapstructure:"store"`
	Log      LogConfig             `mapstructure:"log"`
}

type GeneralConfig struct {
	DefaultScreen  string `mapstructure:"default_screen"`
	PersistFilters bool   `mapstructure:"persist_filters"`
}

type UIConfig struct {
	Theme        string `mapstructure:"theme"`
	MouseEnabled bool   `mapstructure:"mouse_enabled"`
	CardWidth    int    `mapstructure:"card_width"`
}

type DataConfig struct {
	// Source is "fixture" or "postgres"
	Source      string `mapstructure:"source"`
	FixturePath string `mapstructure:"fixture_path"`
	PropertyID  string `mapstructure:"property_id"`
}

type StoreConfig struct {
	// Backend is "memory" or "sqlite"
	Backend string `mapstructure:"backend"`
	// Path of the sqlite file; empty means filters.db in the config directory
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Debug bool   `mapstructure:"debug"`
}

// GetDefaults returns a Config with all default values
func GetDefaults() *Config {
	return &Config{
		General: GeneralConfig{
			DefaultScreen:  string(models.DomainRooms),
			PersistFilters: true,
		},
		UI: UIConfig{
			Theme:        "default",
			MouseEnabled: true,
			CardWidth:    38,
		},
		Data: DataConfig{
			Source:      "fixture",
			FixturePath: "property.yaml",
		},
		Database: models.DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			SSLMode: "prefer",
		},
		Store: StoreConfig{
			Backend: "sqlite",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := GetDefaults()
	v.SetDefault("general.default_screen", d.General.DefaultScreen)
	v.SetDefault("general.persist_filters", d.General.PersistFilters)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.mouse_enabled", d.UI.MouseEnabled)
	v.SetDefault("ui.card_width", d.UI.CardWidth)
	v.SetDefault("data.source", d.Data.Source)
	v.SetDefault("data.fixture_path", d.Data.FixturePath)
	v.SetDefault("data.property_id", d.Data.PropertyID)
	v.SetDefault("database.host", d.Database.Host)
	v.SetDefault("database.port", d.Database.Port)
	v.SetDefault("database.user", d.Database.User)
	v.SetDefault("database.database", d.Database.Database)
	v.SetDefault("database.ssl_mode", d.Database.SSLMode)
	v.SetDefault("store.backend", d.Store.Backend)
	v.SetDefault("store.path", d.Store.Path)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.debug", d.Log.Debug)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("LAZYSTAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load loads configuration from the standard search paths
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")

	// Add config paths in priority order
	// 1. User config directory
	if configDir, err := GetConfigPath(); err == nil {
		v.AddConfigPath(configDir)
	}

	// 2. Current directory
	v.AddConfigPath(".")

	// 3. Default config directory
	v.AddConfigPath("./config")

	// Read config (it's okay if file doesn't exist, we have defaults)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	return decode(v)
}

// LoadFile loads configuration from an explicit file
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	// Unmarshal into struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the app cannot act on
func (c *Config) Validate() error {
	if _, ok := c.Screen(); !ok {
		return fmt.Errorf("invalid general.default_screen %q", c.General.DefaultScreen)
	}
	switch c.Data.Source {
	case "fixture", "postgres":
	default:
		return fmt.Errorf("invalid data.source %q: want fixture or postgres", c.Data.Source)
	}
	switch c.Store.Backend {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("invalid store.backend %q: want memory or sqlite", c.Store.Backend)
	}
	if c.UI.CardWidth < 20 {
		return fmt.Errorf("invalid ui.card_width %d: must be at least 20", c.UI.CardWidth)
	}
	return nil
}

// Screen maps general.default_screen to a list.
// "bookings" is accepted as a short form of advance_bookings.
func (c *Config) Screen() (models.Domain, bool) {
	name := strings.ToLower(strings.TrimSpace(c.General.DefaultScreen))
	if name == "bookings" {
		name = string(models.DomainBookings)
	}
	for _, d := range models.AllDomains {
		if string(d) == name {
			return d, true
		}
	}
	return "", false
}

// GetConfigPath returns the user config directory path
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appName), nil
}

// StorePath resolves the sqlite store file
func (c *Config) StorePath(configDir string) string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return filepath.Join(configDir, "filters.db")
}
