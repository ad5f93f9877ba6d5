// Package inflector provides the pluralization strategy object used by the
// configuration tree. Custom rules registered on a [Rules] instance take
// precedence; anything unmatched falls through to gobuffalo/flect.
package inflector

import (
	"strings"

	"github.com/gobuffalo/flect"
)

// Rules is a customizable pluralize/singularize strategy. The zero value is
// not usable; construct instances with [New].
type Rules struct {
	plurals      map[string]string
	singulars    map[string]string
	uncountables map[string]struct{}
}

// New returns an empty rule set backed by flect's defaults.
func New() *Rules {
	return &Rules{
		plurals:      make(map[string]string),
		singulars:    make(map[string]string),
		uncountables: make(map[string]struct{}),
	}
}

// Plural registers a custom plural form for a singular word.
func (r *Rules) Plural(singular, plural string) {
	r.plurals[strings.ToLower(singular)] = plural
}

// Singular registers a custom singular form for a plural word.
func (r *Rules) Singular(plural, singular string) {
	r.singulars[strings.ToLower(plural)] = singular
}

// Irregular registers both directions of an irregular pair.
func (r *Rules) Irregular(singular, plural string) {
	r.Plural(singular, plural)
	r.Singular(plural, singular)
}

// Uncountable marks words that never change form.
func (r *Rules) Uncountable(words ...string) {
	for _, w := range words {
		r.uncountables[strings.ToLower(w)] = struct{}{}
	}
}

// Pluralize returns the plural form of word.
func (r *Rules) Pluralize(word string) string {
	key := strings.ToLower(word)
	if _, ok := r.uncountables[key]; ok {
		return word
	}
	if plural, ok := r.plurals[key]; ok {
		return plural
	}
	return flect.Pluralize(word)
}

// Singularize returns the singular form of word.
func (r *Rules) Singularize(word string) string {
	key := strings.ToLower(word)
	if _, ok := r.uncountables[key]; ok {
		return word
	}
	if singular, ok := r.singulars[key]; ok {
		return singular
	}
	return flect.Singularize(word)
}

// CloneValue returns an independent copy of the rule set. It satisfies the
// settings store's Cloner contract so configuration copies do not share
// rule maps with their source.
func (r *Rules) CloneValue() any {
	out := New()
	for k, v := range r.plurals {
		out.plurals[k] = v
	}
	for k, v := range r.singulars {
		out.singulars[k] = v
	}
	for k := range r.uncountables {
		out.uncountables[k] = struct{}{}
	}
	return out
}
