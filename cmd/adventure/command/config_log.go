package command

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

const defaultLogFile = "adventure.log"

type LogConfig struct {
	Level string `json:"level"`
	// File receives the logs. The terminal owns the screen, so logs never
	// go to stdout.
	File string `json:"file"`
}

func (c *LogConfig) validate() error {
	if c.Level == "" {
		return nil
	}
	if _, err := logrus.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// BuildLogger configures the standard logrus logger to append to the log
// file, which stays open for the life of the process.
func (c *LogConfig) BuildLogger() (*logrus.Logger, error) {
	level := logrus.InfoLevel
	if c.Level != "" {
		l, err := logrus.ParseLevel(c.Level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		level = l
	}

	path := c.File
	if path == "" {
		path = defaultLogFile
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %q: %w", path, err)
	}

	logger := logrus.StandardLogger()
	logger.SetLevel(level)
	logger.SetOutput(f)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	})
	return logger, nil
}
