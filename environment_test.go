package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEnvironment_FromVariable(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	assert.Equal(t, Production, DefaultEnvironment())
}

func TestDefaultEnvironment_FallsBackToDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "")

	assert.Equal(t, Development, DefaultEnvironment())
}
