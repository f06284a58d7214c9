package config

import (
	"fmt"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"GOMOKU_LOG_LEVEL" env-default:"info"`
	Board    Board  `yaml:"board"`
}

type Board struct {
	Size         int    `yaml:"size" env:"GOMOKU_BOARD_SIZE" env-default:"15"`
	Variant      string `yaml:"variant" env:"GOMOKU_VARIANT" env-default:"five"`
	AllowedSizes []int  `yaml:"allowed-sizes" env:"GOMOKU_ALLOWED_SIZES" env-default:"15,17,19"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file, applies env overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// GetVariant - the variant played when a command does not name one.
func (that *Board) GetVariant() (entity.Variant, error) {
	variant, err := entity.ParseVariant(that.Variant)
	if err != nil {
		return 0, fmt.Errorf("board variant: %w", err)
	}

	return variant, nil
}

// IsAllowedSize - an empty allow-list accepts any positive size.
func (that *Board) IsAllowedSize(size int) bool {
	if size <= 0 {
		return false
	}

	if len(that.AllowedSizes) == 0 {
		return true
	}

	return slices.Contains(that.AllowedSizes, size)
}
