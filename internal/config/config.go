package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage  string `yaml:"storage" env:"STORAGE" env-default:"memory"`
	Redis    Redis  `yaml:"redis"`
	Board    Board  `yaml:"board"`
}

type Redis struct {
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"REDIS_SESSION_TTL" env-default:"24h"`
}

// Board - grid sizes offered to players. The engine itself accepts any size >= 1.
type Board struct {
	DefaultSize int `yaml:"default-size" env-default:"3"`
	MinSize     int `yaml:"min-size" env-default:"3"`
	MaxSize     int `yaml:"max-size" env-default:"6"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Board.validate(); err != nil {
		return nil, fmt.Errorf("invalid board config: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Board) validate() error {
	if that.MinSize < 1 || that.MaxSize < that.MinSize {
		return fmt.Errorf("size range [%d, %d] is empty", that.MinSize, that.MaxSize)
	}

	if that.DefaultSize < that.MinSize || that.DefaultSize > that.MaxSize {
		return fmt.Errorf("default size %d is outside [%d, %d]", that.DefaultSize, that.MinSize, that.MaxSize)
	}

	return nil
}
