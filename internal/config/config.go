package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mcoot/wordsland/internal/model"
)

// EnvPrefix prefixes every environment override, e.g. WORDSLAND_SERVER_PORT
const EnvPrefix = "WORDSLAND"

// Storage backends
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Config is the server configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Game       GameConfig       `mapstructure:"game"`
	Session    SessionConfig    `mapstructure:"session"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type StorageConfig struct {
	Type            string        `mapstructure:"type"`
	RedisURL        string        `mapstructure:"redis_url"`
	RedisPoolSize   int           `mapstructure:"redis_pool_size"`
	RoundHistoryTTL time.Duration `mapstructure:"round_history_ttl"`
}

type DictionaryConfig struct {
	Path  string `mapstructure:"path"`
	Async bool   `mapstructure:"async"`
}

type GameConfig struct {
	Rows      int `mapstructure:"rows"`
	Cols      int `mapstructure:"cols"`
	Obstacles int `mapstructure:"obstacles"`
	Rewards   int `mapstructure:"rewards"`
	RewardMin int `mapstructure:"reward_min"`
	RewardMax int `mapstructure:"reward_max"`
	HandSize  int `mapstructure:"hand_size"`
	// Seed makes board generation and bag shuffles reproducible; 0 means unseeded
	Seed uint64 `mapstructure:"seed"`
}

type SessionConfig struct {
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`
	PruneInterval time.Duration `mapstructure:"prune_interval"`
}

func setDefaults(v *viper.Viper) {
	layout := model.DefaultLayout()
	game := model.DefaultGameConfig()

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("log.level", "info")

	v.SetDefault("storage.type", StorageTypeMemory)
	v.SetDefault("storage.redis_url", "redis://localhost:6379")
	v.SetDefault("storage.redis_pool_size", 10)
	v.SetDefault("storage.round_history_ttl", 24*time.Hour)

	v.SetDefault("dictionary.path", "data/words.txt")
	v.SetDefault("dictionary.async", true)

	v.SetDefault("game.rows", layout.Rows)
	v.SetDefault("game.cols", layout.Cols)
	v.SetDefault("game.obstacles", layout.Obstacles)
	v.SetDefault("game.rewards", layout.Rewards)
	v.SetDefault("game.reward_min", layout.RewardMin)
	v.SetDefault("game.reward_max", layout.RewardMax)
	v.SetDefault("game.hand_size", game.HandSize)
	v.SetDefault("game.seed", 0)

	v.SetDefault("session.idle_timeout", 2*time.Hour)
	v.SetDefault("session.prune_interval", 5*time.Minute)
}

// Load reads the optional YAML file at path, then applies WORDSLAND_*
// environment overrides on top of the defaults
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that would otherwise fail late
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case StorageTypeMemory:
	case StorageTypeRedis:
		if c.Storage.RedisURL == "" {
			return errors.New("storage.redis_url required when storage.type is redis")
		}
	default:
		return fmt.Errorf("invalid storage.type %q: must be 'memory' or 'redis'", c.Storage.Type)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Game.HandSize <= 0 {
		return model.ErrInvalidHandSize
	}
	return nil
}

// GameConfig returns the rules parameters for new sessions
func (c *Config) GameConfig() model.GameConfig {
	cfg := model.DefaultGameConfig()
	cfg.HandSize = c.Game.HandSize
	cfg.Layout = model.Layout{
		Rows:      c.Game.Rows,
		Cols:      c.Game.Cols,
		Obstacles: c.Game.Obstacles,
		Rewards:   c.Game.Rewards,
		RewardMin: c.Game.RewardMin,
		RewardMax: c.Game.RewardMax,
	}
	return cfg
}

// LogLevel returns the configured slog level
func (c *Config) LogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log.level %q", s)
	}
	return level, nil
}
