// Package config loads game settings from defaults, an optional YAML file,
// the environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. TREASURESHARK_FOV_RADIUS.
const EnvPrefix = "TREASURESHARK"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed      int64           `mapstructure:"seed"`
	Dungeon   DungeonConfig   `mapstructure:"dungeon"`
	FOV       FOVConfig       `mapstructure:"fov"`
	Screen    ScreenConfig    `mapstructure:"screen"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// DungeonConfig sizes the map and controls room placement and population.
type DungeonConfig struct {
	Width           int `mapstructure:"width"`
	Height          int `mapstructure:"height"`
	MaxRooms        int `mapstructure:"max_rooms"`
	RoomMinSize     int `mapstructure:"room_min_size"`
	RoomMaxSize     int `mapstructure:"room_max_size"`
	MaxRoomMonsters int `mapstructure:"max_room_monsters"`
}

// FOVConfig controls the player's field of view.
type FOVConfig struct {
	Radius     int  `mapstructure:"radius"`
	LightWalls bool `mapstructure:"light_walls"`
}

// ScreenConfig holds terminal layout options.
type ScreenConfig struct {
	PanelHeight int `mapstructure:"panel_height"` // Rows under the map for status and messages
}

// LogConfig selects where and how structured logs are written.
type LogConfig struct {
	File       string `mapstructure:"file"` // Empty disables logging
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // json | console
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// TelemetryConfig enables trace export to Honeycomb.
type TelemetryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"api_key"`
	Dataset string `mapstructure:"dataset"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("dungeon.width", 80)
	v.SetDefault("dungeon.height", 45)
	v.SetDefault("dungeon.max_rooms", 30)
	v.SetDefault("dungeon.room_min_size", 6)
	v.SetDefault("dungeon.room_max_size", 10)
	v.SetDefault("dungeon.max_room_monsters", 3)
	v.SetDefault("fov.radius", 10)
	v.SetDefault("fov.light_walls", true)
	v.SetDefault("screen.panel_height", 5)
	v.SetDefault("log.file", "treasureshark.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.api_key", "")
	v.SetDefault("telemetry.dataset", "treasureshark")
}

// Default returns the configuration with no file, environment or flags applied.
func Default() Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return cfg
}

// Load reads configuration. path may be empty to skip the config file.
// Flags, when non-nil, are bound by name: "seed" and "log-level".
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup("seed"); f != nil {
			if err := v.BindPFlag("seed", f); err != nil {
				return nil, fmt.Errorf("bind seed flag: %w", err)
			}
		}
		if f := flags.Lookup("log-level"); f != nil {
			if err := v.BindPFlag("log.level", f); err != nil {
				return nil, fmt.Errorf("bind log-level flag: %w", err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	d := c.Dungeon
	switch {
	case d.Width <= 0 || d.Height <= 0:
		return fmt.Errorf("%w: dungeon size %dx%d must be positive", ErrInvalid, d.Width, d.Height)
	case d.MaxRooms <= 0:
		return fmt.Errorf("%w: dungeon.max_rooms must be positive, got %d", ErrInvalid, d.MaxRooms)
	case d.RoomMinSize < 2:
		// A room needs a wall on each side of at least one open tile.
		return fmt.Errorf("%w: dungeon.room_min_size must be at least 2, got %d", ErrInvalid, d.RoomMinSize)
	case d.RoomMinSize > d.RoomMaxSize:
		return fmt.Errorf("%w: dungeon.room_min_size %d exceeds dungeon.room_max_size %d",
			ErrInvalid, d.RoomMinSize, d.RoomMaxSize)
	case d.Width <= d.RoomMaxSize || d.Height <= d.RoomMaxSize:
		return fmt.Errorf("%w: %dx%d dungeon cannot fit rooms up to %d tiles",
			ErrInvalid, d.Width, d.Height, d.RoomMaxSize)
	case d.MaxRoomMonsters < 0:
		return fmt.Errorf("%w: dungeon.max_room_monsters must not be negative, got %d", ErrInvalid, d.MaxRoomMonsters)
	case c.FOV.Radius < 0:
		return fmt.Errorf("%w: fov.radius must not be negative, got %d", ErrInvalid, c.FOV.Radius)
	case c.Screen.PanelHeight < 1:
		return fmt.Errorf("%w: screen.panel_height must be at least 1, got %d", ErrInvalid, c.Screen.PanelHeight)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.format must be json or console, got %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
