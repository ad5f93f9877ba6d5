// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package feature answers the single question the configuration tree asks
// about its surroundings: is an optional feature module present in this
// process? The answer is modeled as an injectable [Gate] so tests can stub
// it instead of reading live process state.
package feature

import "sync"

//go:generate mockgen -source=feature.go -destination=../internal/mock/feature_gate_mock.go -package=mock

// Gate reports whether an optional feature module is bundled into the
// running application. Implementations must be side-effect free: the
// configuration tree treats Bundled as a pure query.
type Gate interface {
	Bundled(name string) bool
}

// Registry is a process-wide Gate populated by feature modules at init
// time. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	present map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{present: make(map[string]struct{})}
}

// Register marks one or more feature modules as present.
func (r *Registry) Register(names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		r.present[name] = struct{}{}
	}
}

// Bundled reports whether name has been registered.
func (r *Registry) Bundled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.present[name]
	return ok
}

// Default is the registry feature modules register themselves with,
// typically from an init function guarded by a blank import.
var Default = NewRegistry()

// Register marks feature modules as present on [Default].
func Register(names ...string) {
	Default.Register(names...)
}

// StaticGate is a fixed-answer Gate for tests and explicit bootstrap
// wiring. Names absent from the map are reported as not bundled.
type StaticGate map[string]bool

// Bundled reports the value stored under name.
func (g StaticGate) Bundled(name string) bool { return g[name] }
