// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"
	"net/url"
)

// Constructor coerces a raw value into a setting's canonical representation.
// It runs on every assignment, not only the first one.
type Constructor func(value any) (any, error)

// Definition declares a named setting on a [Store].
type Definition struct {
	// Name is the key the setting is read and written under.
	Name string

	// Default, when non-nil, produces the initial value of the setting.
	// It is invoked once per store (including once per copy source at
	// NewStore time); a nil Default leaves the setting unset.
	Default func() any

	// Constructor, when non-nil, coerces every assigned value. Defaults
	// bypass the constructor: they are authored in code and assumed
	// canonical already.
	Constructor Constructor
}

// Cloner lets a setting value control how it is duplicated by [Store.Copy].
// Values that do not implement Cloner and are not one of the known
// container kinds are copied by assignment.
type Cloner interface {
	CloneValue() any
}

// Store is a finalizable settings container: a set of declared settings
// plus an ad-hoc area for names defined at runtime.
//
// A Store is not safe for concurrent mutation. The intended lifecycle is
// single-writer population followed by Finalize, after which the store is
// effectively immutable and safe for unsynchronized reads.
type Store struct {
	defs      map[string]Definition
	values    map[string]any
	extra     map[string]any
	finalized bool
}

// NewStore builds a Store over the given definitions, populating each
// setting that declares a default.
func NewStore(defs ...Definition) *Store {
	s := &Store{
		defs:   make(map[string]Definition, len(defs)),
		values: make(map[string]any, len(defs)),
		extra:  make(map[string]any),
	}
	for _, def := range defs {
		s.defs[def.Name] = def
		if def.Default != nil {
			s.values[def.Name] = def.Default()
		}
	}
	return s
}

// Set assigns a declared setting, running its constructor on the value.
// It fails with [ErrFinalized] after Finalize, with [UnknownSettingError]
// for undeclared names, and with [CoercionError] when the constructor
// rejects the value.
func (s *Store) Set(name string, value any) error {
	if s.finalized {
		return fmt.Errorf("set %q: %w", name, ErrFinalized)
	}

	def, ok := s.defs[name]
	if !ok {
		return &UnknownSettingError{Name: name}
	}

	if def.Constructor != nil {
		coerced, err := def.Constructor(value)
		if err != nil {
			return &CoercionError{Setting: name, Value: value, Err: err}
		}
		value = coerced
	}

	s.values[name] = value
	return nil
}

// Put stores an ad-hoc setting that was never declared on the store.
// Declared names are routed through [Store.Set] so their constructors
// still apply.
func (s *Store) Put(name string, value any) error {
	if _, declared := s.defs[name]; declared {
		return s.Set(name, value)
	}
	if s.finalized {
		return fmt.Errorf("put %q: %w", name, ErrFinalized)
	}

	s.extra[name] = value
	return nil
}

// Get returns the current value of a declared or ad-hoc setting.
// A declared setting with no default and no assignment is unset and
// resolves like an unknown name.
func (s *Store) Get(name string) (any, error) {
	if v, ok := s.values[name]; ok {
		return v, nil
	}
	if v, ok := s.extra[name]; ok {
		return v, nil
	}
	return nil, &UnknownSettingError{Name: name}
}

// Lookup is Get without the error: the second result reports presence.
func (s *Store) Lookup(name string) (any, bool) {
	if v, ok := s.values[name]; ok {
		return v, true
	}
	v, ok := s.extra[name]
	return v, ok
}

// Unset reports whether a declared setting currently has no value.
func (s *Store) Unset(name string) bool {
	_, ok := s.values[name]
	return !ok
}

// Finalize locks the store. Calling it again is a no-op.
func (s *Store) Finalize() {
	s.finalized = true
}

// Finalized reports whether the store has been locked.
func (s *Store) Finalized() bool {
	return s.finalized
}

// Copy returns an independent, mutable duplicate of the store. Container
// values (slices, maps) are duplicated so the copy and the source can be
// mutated without cross-talk; the copy starts unlocked even when the
// source was finalized.
func (s *Store) Copy() *Store {
	out := &Store{
		defs:   s.defs,
		values: make(map[string]any, len(s.values)),
		extra:  make(map[string]any, len(s.extra)),
	}
	for name, v := range s.values {
		out.values[name] = cloneValue(v)
	}
	for name, v := range s.extra {
		out.extra[name] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []string:
		return append([]string(nil), t...)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case map[string][]string:
		out := make(map[string][]string, len(t))
		for k, e := range t {
			out[k] = append([]string(nil), e...)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case *url.URL:
		u := *t
		return &u
	case Cloner:
		return t.CloneValue()
	default:
		return v
	}
}
