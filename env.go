package appconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// environSettings maps the environment variables the tree reads at
// construction time. Slices is a pointer so an absent variable stays
// distinguishable from an empty one: absent leaves the slices setting
// unset, which means "load all slices".
type environSettings struct {
	Slices *string `env:"APP_SLICES"`
}

func (c *Config) loadEnviron(environ map[string]string) error {
	var opts env.Options
	if environ != nil {
		opts.Environment = environ
	}

	parsed, err := env.ParseAsWithOptions[environSettings](opts)
	if err != nil {
		return fmt.Errorf("parse environment variables: %w", err)
	}

	if parsed.Slices == nil {
		return nil
	}
	return c.store.Set("slices", splitList(*parsed.Slices))
}
