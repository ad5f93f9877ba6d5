package appconfig

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-app-config/logger"
	"github.com/MKhiriev/go-app-config/settings"
)

// LoggerConfig is the logger section of the configuration tree. Unlike the
// optional sections it is always present; it is tuned before finalize and
// materialized into a *logger.Logger on first use.
type LoggerConfig struct {
	section
}

func newLoggerConfig(environment Environment) *LoggerConfig {
	return &LoggerConfig{section{store: settings.NewStore(
		settings.Definition{
			Name: "level",
			Default: func() any {
				if environment == Production {
					return "info"
				}
				return "debug"
			},
			Constructor: logLevelValue,
		},
	)}}
}

func logLevelValue(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", value)
	}
	if _, err := zerolog.ParseLevel(s); err != nil {
		return nil, fmt.Errorf("unknown log level %q", s)
	}
	return s, nil
}

// Level returns the configured log level.
func (l *LoggerConfig) Level() string { return l.getString("level") }

// SetLevel sets the log level; the value must parse as a zerolog level.
func (l *LoggerConfig) SetLevel(level string) error {
	return l.store.Set("level", level)
}

// Materialize builds the logger instance this configuration describes.
func (l *LoggerConfig) Materialize(ownerName string, environment Environment) *logger.Logger {
	return logger.New(ownerName, string(environment), l.Level(), nil)
}

func (l *LoggerConfig) copy() *LoggerConfig {
	return &LoggerConfig{section{store: l.store.Copy()}}
}
