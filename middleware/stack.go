// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package middleware holds the ordered middleware stack owned by the
// configuration tree's router section. The stack only records middleware
// during the configuration phase; execution happens wherever the stack is
// mounted onto a router.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RootPath is the mount point used when no explicit path is given.
const RootPath = "/"

// Middleware is the standard http middleware shape chi accepts.
type Middleware func(http.Handler) http.Handler

// Entry is one registered middleware: where it is mounted, what it is
// called, the configuration it was built from, and the handler itself.
type Entry struct {
	Path    string
	Name    string
	Config  any
	Handler Middleware
}

// Stack is an ordered collection of middleware registrations.
// It is populated during the configuration phase and read-only afterwards;
// no internal locking is provided.
type Stack struct {
	entries []Entry
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Use registers a middleware at the root path.
func (s *Stack) Use(name string, handler Middleware, config any) {
	s.UseAt(RootPath, name, handler, config)
}

// UseAt registers a middleware at an explicit mount path.
func (s *Stack) UseAt(path, name string, handler Middleware, config any) {
	s.entries = append(s.entries, Entry{Path: path, Name: name, Config: config, Handler: handler})
}

// At returns the entries mounted at path, in registration order.
func (s *Stack) At(path string) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if e.Path == path {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns a copy of all registrations in order.
func (s *Stack) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Len reports the number of registrations.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Copy returns an independent stack with the same registrations.
// Entry configs are shared: they describe how a handler was built and are
// not mutated after registration.
func (s *Stack) Copy() *Stack {
	return &Stack{entries: append([]Entry(nil), s.entries...)}
}

// Mount applies the stack to a chi router: root-path entries through
// Use, scoped entries through a Route group per path. Mount must run
// before any routes are registered on r.
func (s *Stack) Mount(r chi.Router) {
	var scoped []string
	byPath := make(map[string][]Entry)
	for _, e := range s.entries {
		if e.Path == RootPath {
			r.Use(e.Handler)
			continue
		}
		if _, seen := byPath[e.Path]; !seen {
			scoped = append(scoped, e.Path)
		}
		byPath[e.Path] = append(byPath[e.Path], e)
	}

	for _, path := range scoped {
		entries := byPath[path]
		r.Route(path, func(sub chi.Router) {
			for _, e := range entries {
				sub.Use(e.Handler)
			}
		})
	}
}
