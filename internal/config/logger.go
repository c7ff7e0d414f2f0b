package config

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// SetupLogger applies the configured level and format to the standard logger
func SetupLogger(c Config) error {
	if lvl := c.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return err
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(c.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	return nil
}
