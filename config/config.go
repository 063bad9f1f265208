// Package config loads blockfall's configuration from defaults, an optional
// TOML file, BLOCKFALL_ environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/rules"
)

// EnvPrefix prefixes every environment override, e.g. BLOCKFALL_GAME_SEED.
const EnvPrefix = "BLOCKFALL"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config is the full application configuration.
type Config struct {
	Game     GameConfig     `mapstructure:"game" toml:"game"`
	Display  DisplayConfig  `mapstructure:"display" toml:"display"`
	Terminal TerminalConfig `mapstructure:"terminal" toml:"terminal"`
	Audio    AudioConfig    `mapstructure:"audio" toml:"audio"`
	Spectate SpectateConfig `mapstructure:"spectate" toml:"spectate"`
	Log      LogConfig      `mapstructure:"log" toml:"log"`
}

// GameConfig holds the rules and piece generation settings.
type GameConfig struct {
	FallSpeed       float64 `mapstructure:"fall_speed" toml:"fall_speed" comment:"seconds between gravity steps at level 0"`
	FallSpeedFloor  float64 `mapstructure:"fall_speed_floor" toml:"fall_speed_floor"`
	FallSpeedStep   float64 `mapstructure:"fall_speed_step" toml:"fall_speed_step"`
	LevelIntervalMS int     `mapstructure:"level_interval_ms" toml:"level_interval_ms"`
	PointsPerRow    int     `mapstructure:"points_per_row" toml:"points_per_row"`
	GameOverDelayMS int     `mapstructure:"game_over_delay_ms" toml:"game_over_delay_ms"`
	Randomizer      string  `mapstructure:"randomizer" toml:"randomizer" comment:"uniform or bag"`
	Seed            uint64  `mapstructure:"seed" toml:"seed" comment:"0 seeds from the clock"`
	LineClear       string  `mapstructure:"line_clear" toml:"line_clear" comment:"boundary or cascade"`
}

// DisplayConfig configures the desktop window.
type DisplayConfig struct {
	Width  int  `mapstructure:"width" toml:"width"`
	Height int  `mapstructure:"height" toml:"height"`
	TPS    int  `mapstructure:"tps" toml:"tps"`
	Debug  bool `mapstructure:"debug" toml:"debug" comment:"show the imgui debug overlay"`
}

// TerminalConfig configures the terminal frontend.
type TerminalConfig struct {
	FPS int `mapstructure:"fps" toml:"fps"`
}

// AudioConfig configures sound effects.
type AudioConfig struct {
	Enabled    bool    `mapstructure:"enabled" toml:"enabled"`
	SampleRate int     `mapstructure:"sample_rate" toml:"sample_rate"`
	Volume     float64 `mapstructure:"volume" toml:"volume" comment:"0 to 1"`
}

// SpectateConfig configures the spectator HTTP server.
type SpectateConfig struct {
	Addr string `mapstructure:"addr" toml:"addr" comment:"empty disables the spectator server"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level       string `mapstructure:"level" toml:"level"`
	Development bool   `mapstructure:"development" toml:"development"`
	File        string `mapstructure:"file" toml:"file" comment:"log destination for the terminal frontend"`
}

// Default returns the built-in configuration.
func Default() Config {
	settings := game.DefaultSettings()
	return Config{
		Game: GameConfig{
			FallSpeed:       settings.FallSpeed,
			FallSpeedFloor:  settings.FallSpeedFloor,
			FallSpeedStep:   settings.FallSpeedStep,
			LevelIntervalMS: int(settings.LevelInterval / time.Millisecond),
			PointsPerRow:    settings.PointsPerRow,
			GameOverDelayMS: int(settings.GameOverDelay / time.Millisecond),
			Randomizer:      piece.RandomizerUniform,
			LineClear:       rules.LineClearBoundary,
		},
		Display: DisplayConfig{
			Width:  800,
			Height: 700,
			TPS:    60,
		},
		Terminal: TerminalConfig{
			FPS: 30,
		},
		Audio: AudioConfig{
			SampleRate: 44100,
			Volume:     0.3,
		},
		Log: LogConfig{
			Level: "info",
			File:  "blockfall.log",
		},
	}
}

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"seed":      "game.seed",
	"debug":     "display.debug",
	"audio":     "audio.enabled",
	"spectate":  "spectate.addr",
}

// Load reads the configuration. path may be empty, flags may be nil. Only the
// flags named in flagKeys are bound.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	defaults, err := toml.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("encode defaults: %w", err)
	}
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return nil, fmt.Errorf("read defaults: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
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

// Validate reports every invalid field, each wrapped with ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	g := c.Game
	if g.FallSpeed <= 0 {
		invalid("game.fall_speed must be positive, got %v", g.FallSpeed)
	}
	if g.FallSpeedFloor <= 0 {
		invalid("game.fall_speed_floor must be positive, got %v", g.FallSpeedFloor)
	}
	if g.FallSpeedFloor > g.FallSpeed {
		invalid("game.fall_speed_floor %v is above game.fall_speed %v", g.FallSpeedFloor, g.FallSpeed)
	}
	if g.FallSpeedStep < 0 {
		invalid("game.fall_speed_step must not be negative, got %v", g.FallSpeedStep)
	}
	if g.LevelIntervalMS <= 0 {
		invalid("game.level_interval_ms must be positive, got %d", g.LevelIntervalMS)
	}
	if g.PointsPerRow < 0 {
		invalid("game.points_per_row must not be negative, got %d", g.PointsPerRow)
	}
	if g.GameOverDelayMS < 0 {
		invalid("game.game_over_delay_ms must not be negative, got %d", g.GameOverDelayMS)
	}
	if _, err := piece.NewGenerator(g.Randomizer, 1); err != nil {
		invalid("game.randomizer %q", g.Randomizer)
	}
	if _, err := rules.ParseLineClear(g.LineClear); err != nil {
		invalid("game.line_clear %q", g.LineClear)
	}

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		invalid("display size %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.TPS <= 0 {
		invalid("display.tps must be positive, got %d", c.Display.TPS)
	}
	if c.Terminal.FPS <= 0 {
		invalid("terminal.fps must be positive, got %d", c.Terminal.FPS)
	}
	if c.Audio.SampleRate <= 0 {
		invalid("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		invalid("audio.volume must be between 0 and 1, got %v", c.Audio.Volume)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		invalid("log.level %q", c.Log.Level)
	}

	return errors.Join(errs...)
}

// Settings converts the game section to session settings.
func (g GameConfig) Settings() (game.Settings, error) {
	lineClear, err := rules.ParseLineClear(g.LineClear)
	if err != nil {
		return game.Settings{}, err
	}
	return game.Settings{
		FallSpeed:      g.FallSpeed,
		FallSpeedFloor: g.FallSpeedFloor,
		FallSpeedStep:  g.FallSpeedStep,
		LevelInterval:  time.Duration(g.LevelIntervalMS) * time.Millisecond,
		PointsPerRow:   g.PointsPerRow,
		GameOverDelay:  time.Duration(g.GameOverDelayMS) * time.Millisecond,
		LineClear:      lineClear,
	}, nil
}

// Generator builds the configured piece generator.
func (g GameConfig) Generator() (piece.Generator, error) {
	return piece.NewGenerator(g.Randomizer, g.Seed)
}

// Write encodes cfg as TOML.
func Write(w io.Writer, cfg Config) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
