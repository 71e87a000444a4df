package command

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/pixil98/go-errors"
)

type Config struct {
	Storage StorageConfig `json:"storage"`
	Session SessionConfig `json:"session"`
	Audio   AudioConfig   `json:"audio"`
	Log     LogConfig     `json:"log"`
}

// envOverrides are the settings that can be replaced from the environment.
type envOverrides struct {
	DataPath string `env:"ADVENTURE_DATA_PATH"`
	LogLevel string `env:"ADVENTURE_LOG_LEVEL"`
	LogFile  string `env:"ADVENTURE_LOG_FILE"`
	Player   string `env:"ADVENTURE_PLAYER"`
}

// ApplyEnv replaces config values with any set ADVENTURE_* variables.
func (c *Config) ApplyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.DataPath != "" {
		c.Storage.Path = o.DataPath
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.LogFile != "" {
		c.Log.File = o.LogFile
	}
	if o.Player != "" {
		c.Session.Player = o.Player
	}
	return nil
}

// Validate applies environment overrides, fills defaults and checks every
// section.
func (c *Config) Validate() error {
	if err := c.ApplyEnv(); err != nil {
		return err
	}

	el := errors.NewErrorList()
	el.Add(c.Storage.validate())
	el.Add(c.Session.validate())
	el.Add(c.Audio.validate())
	el.Add(c.Log.validate())
	return el.Err()
}
