package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeSolve    = "solve"
	ModeSelfPlay = "selfplay"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode     string `yaml:"mode" env:"ENGINE_MODE" env-default:"solve"`
	// Board is the starting position in row form, e.g. "XX./OO./...".
	Board string `yaml:"board" env:"ENGINE_BOARD" env-default:".../.../..."`
	// Plain disables ANSI colors in the rendered board.
	Plain bool `yaml:"plain" env:"ENGINE_PLAIN"`
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

	if config.Mode != ModeSolve && config.Mode != ModeSelfPlay {
		return nil, fmt.Errorf("unknown mode %q", config.Mode)
	}

	return config, nil
}
