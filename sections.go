// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appconfig

import (
	"fmt"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-app-config/middleware"
	"github.com/MKhiriev/go-app-config/settings"
)

// Names of the optional feature modules the configuration tree knows about.
const (
	FeatureActions = "actions"
	FeatureRouter  = "router"
	FeatureViews   = "views"
	FeatureAssets  = "assets"
)

// ── shared constructors ───────────────────────────────────────────────────────

func stringValue(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", value)
	}
	return s, nil
}

func boolValue(value any) (any, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("expected bool, got %T", value)
	}
	return b, nil
}

func stringListValue(value any) (any, error) {
	list, ok := value.([]string)
	if !ok {
		return nil, fmt.Errorf("expected []string, got %T", value)
	}
	return append([]string(nil), list...), nil
}

func mimeMapValue(value any) (any, error) {
	m, ok := value.(map[string][]string)
	if !ok {
		return nil, fmt.Errorf("expected map[string][]string, got %T", value)
	}
	out := make(map[string][]string, len(m))
	for format, mimeTypes := range m {
		out[format] = append([]string(nil), mimeTypes...)
	}
	return out, nil
}

// ── actions ───────────────────────────────────────────────────────────────────

// Actions is the configuration section contributed by the actions feature
// module: the response formats the application declares and the format used
// when a request does not negotiate one.
type Actions struct {
	section
}

func newActions() *Actions {
	return &Actions{section{store: settings.NewStore(
		settings.Definition{
			Name:        "formats",
			Default:     func() any { return map[string][]string{} },
			Constructor: mimeMapValue,
		},
		settings.Definition{
			Name:        "default_format",
			Default:     func() any { return "html" },
			Constructor: stringValue,
		},
	)}}
}

// Formats returns the declared format-to-MIME-type mapping as a copy.
func (a *Actions) Formats() map[string][]string {
	v, _ := a.store.Lookup("formats")
	m, _ := v.(map[string][]string)
	out := make(map[string][]string, len(m))
	for format, mimeTypes := range m {
		out[format] = append([]string(nil), mimeTypes...)
	}
	return out
}

// SetFormat declares (or redefines) a response format and its MIME types.
func (a *Actions) SetFormat(name string, mimeTypes ...string) error {
	formats := a.Formats()
	formats[name] = mimeTypes
	return a.store.Set("formats", formats)
}

// DefaultFormat returns the fallback response format.
func (a *Actions) DefaultFormat() string { return a.getString("default_format") }

// SetDefaultFormat sets the fallback response format.
func (a *Actions) SetDefaultFormat(name string) error {
	return a.store.Set("default_format", name)
}

func (a *Actions) copy() *Actions {
	return &Actions{section{store: a.store.Copy()}}
}

// ── views ─────────────────────────────────────────────────────────────────────

// Views is the configuration section contributed by the views feature
// module: template lookup paths and the default layout.
type Views struct {
	section
}

func newViews() *Views {
	return &Views{section{store: settings.NewStore(
		settings.Definition{
			Name:        "paths",
			Default:     func() any { return []string{"templates"} },
			Constructor: stringListValue,
		},
		settings.Definition{
			Name:        "layout",
			Default:     func() any { return "application" },
			Constructor: stringValue,
		},
	)}}
}

// Paths returns the template lookup paths.
func (v *Views) Paths() []string { return v.getStrings("paths") }

// SetPaths replaces the template lookup paths.
func (v *Views) SetPaths(paths ...string) error { return v.store.Set("paths", paths) }

// Layout returns the default layout name.
func (v *Views) Layout() string { return v.getString("layout") }

// SetLayout sets the default layout name.
func (v *Views) SetLayout(name string) error { return v.store.Set("layout", name) }

func (v *Views) copy() *Views {
	return &Views{section{store: v.store.Copy()}}
}

// ── assets ────────────────────────────────────────────────────────────────────

// Assets is the configuration section contributed by the assets feature
// module.
type Assets struct {
	section
}

func newAssets() *Assets {
	return &Assets{section{store: settings.NewStore(
		settings.Definition{
			Name:        "public_dir",
			Default:     func() any { return "public" },
			Constructor: stringValue,
		},
		settings.Definition{
			Name:        "compile",
			Default:     func() any { return false },
			Constructor: boolValue,
		},
	)}}
}

// PublicDir returns the directory compiled assets are served from.
func (a *Assets) PublicDir() string { return a.getString("public_dir") }

// SetPublicDir sets the directory compiled assets are served from.
func (a *Assets) SetPublicDir(dir string) error { return a.store.Set("public_dir", dir) }

// Compile reports whether assets are compiled on demand.
func (a *Assets) Compile() bool { return a.getBool("compile") }

// SetCompile toggles on-demand asset compilation.
func (a *Assets) SetCompile(enabled bool) error { return a.store.Set("compile", enabled) }

func (a *Assets) copy() *Assets {
	return &Assets{section{store: a.store.Copy()}}
}

// ── router ────────────────────────────────────────────────────────────────────

// Router is the configuration section contributed by the router feature
// module. It owns the application middleware stack and keeps a back-
// reference to the configuration tree that currently owns it, used to
// resolve shared settings such as base_url.
type Router struct {
	section
	parent *Config
	stack  *middleware.Stack
}

func newRouter(parent *Config) *Router {
	return &Router{
		section: section{store: settings.NewStore(
			settings.Definition{
				Name:        "trailing_slash",
				Default:     func() any { return false },
				Constructor: boolValue,
			},
		)},
		parent: parent,
		stack:  middleware.NewStack(),
	}
}

// Middleware returns the stack owned by this router.
func (r *Router) Middleware() *middleware.Stack { return r.stack }

// Parent returns the configuration tree that currently owns this router.
func (r *Router) Parent() *Config { return r.parent }

// TrailingSlash reports whether routes tolerate a trailing slash.
func (r *Router) TrailingSlash() bool { return r.getBool("trailing_slash") }

// SetTrailingSlash toggles trailing-slash tolerance.
func (r *Router) SetTrailingSlash(enabled bool) error {
	return r.store.Set("trailing_slash", enabled)
}

// FullURL resolves path against the owning tree's base_url setting. The
// lookup always goes through the parent back-reference, so after a tree
// copy it reflects the copy's settings, not the source's.
func (r *Router) FullURL(path string) (*url.URL, error) {
	base, err := r.parent.Resolve("base_url")
	if err != nil {
		return nil, err
	}
	baseURL, ok := base.(*url.URL)
	if !ok {
		return nil, fmt.Errorf("base_url is not a URL: %T", base)
	}
	return baseURL.JoinPath(path), nil
}

// Build materializes a chi router with this router's middleware stack
// applied. The optional routes callback registers handlers after the
// middleware is in place.
func (r *Router) Build(routes func(chi.Router)) *chi.Mux {
	mux := chi.NewRouter()
	r.stack.Mount(mux)
	if routes != nil {
		routes(mux)
	}
	return mux
}

func (r *Router) copy(parent *Config) *Router {
	return &Router{
		section: section{store: r.store.Copy()},
		parent:  parent,
		stack:   r.stack.Copy(),
	}
}
