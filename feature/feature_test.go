package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterAndQuery(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.Bundled("router"))

	r.Register("router", "actions")

	assert.True(t, r.Bundled("router"))
	assert.True(t, r.Bundled("actions"))
	assert.False(t, r.Bundled("views"))
}

func TestStaticGate(t *testing.T) {
	gate := StaticGate{"router": true, "views": false}

	assert.True(t, gate.Bundled("router"))
	assert.False(t, gate.Bundled("views"))
	assert.False(t, gate.Bundled("assets"))
}
