package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	ModeSim = "sim"
	ModeX   = "X"
	ModeO   = "O"

	// configRelPath is looked up under the XDG config directories.
	configRelPath = "tictactoe/config.yml"
)

var ErrInvalidGames = errors.New("number of games must be positive")

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	Mode     string `yaml:"mode" env:"TICTACTOE_MODE" env-default:"sim"`
	Seed     uint64 `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
	Games    int    `yaml:"games" env:"TICTACTOE_GAMES" env-default:"1"`
}

// Load reads path when given, otherwise the XDG config file if one exists,
// otherwise only the environment. Environment variables override file values.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		path = findConfigFile()
	}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func findConfigFile() string {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return ""
	}

	if _, err = os.Stat(filepath.Clean(path)); err != nil {
		return ""
	}

	return path
}

func (that *Config) Validate() error {
	switch that.Mode {
	case ModeSim, ModeX, ModeO:
	default:
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMode, that.Mode)
	}

	if that.Games < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidGames, that.Games)
	}

	return nil
}

func (that *Config) IsSimulation() bool {
	return that.Mode == ModeSim
}
