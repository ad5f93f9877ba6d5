package appconfig

import "github.com/caarlos0/env/v11"

// Environment identifies which mode the application is running in. It is
// part of a configuration tree's identity and never changes after
// construction.
type Environment string

// The standard environments.
const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

type processEnviron struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
}

// DefaultEnvironment resolves the environment from the APP_ENV variable,
// falling back to [Development] when it is absent or unreadable.
func DefaultEnvironment() Environment {
	parsed, err := env.ParseAs[processEnviron]()
	if err != nil || parsed.Environment == "" {
		return Development
	}
	return Environment(parsed.Environment)
}
