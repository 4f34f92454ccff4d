package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env-default:"info"`
	Game      Game      `yaml:"game"`
	Spectator Spectator `yaml:"spectator"`
}

type Game struct {
	StartingPlayer string `yaml:"starting-player" env-default:"red"`
	RedGlyph       string `yaml:"red-glyph"`
	YellowGlyph    string `yaml:"yellow-glyph"`
	EmptyGlyph     string `yaml:"empty-glyph"`
}

// Spectator names the optional read-only view servers; an empty port leaves
// the corresponding server off.
type Spectator struct {
	HTTPPort   string `yaml:"http-port"`
	SocketPort string `yaml:"socket-port"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
