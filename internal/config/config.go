package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env    Env
	Media  MediaConfig
	Server ServerConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port string `envconfig:"SERVER_PORT" default:"3001"`
}

// MediaConfig locates the on-disk clip library. The directory is created on
// startup if it does not exist yet.
type MediaConfig struct {
	Dir string `envconfig:"MEDIA_DIR" default:"./videos"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
