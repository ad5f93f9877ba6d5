package inflector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRules_FlectFallback(t *testing.T) {
	r := New()

	assert.Equal(t, "books", r.Pluralize("book"))
	assert.Equal(t, "book", r.Singularize("books"))
}

func TestRules_CustomRulesWin(t *testing.T) {
	r := New()
	r.Irregular("virus", "viri")
	r.Uncountable("equipment")

	assert.Equal(t, "viri", r.Pluralize("virus"))
	assert.Equal(t, "virus", r.Singularize("viri"))
	assert.Equal(t, "equipment", r.Pluralize("equipment"))
	assert.Equal(t, "equipment", r.Singularize("equipment"))
}

// TestRules_CloneValue verifies that cloned rule sets do not share state
// with their source.
func TestRules_CloneValue(t *testing.T) {
	r := New()
	r.Plural("octopus", "octopi")

	clone := r.CloneValue().(*Rules)
	clone.Plural("octopus", "octopuses")

	assert.Equal(t, "octopi", r.Pluralize("octopus"))
	assert.Equal(t, "octopuses", clone.Pluralize("octopus"))
}
