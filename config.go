// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appconfig

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-app-config/feature"
	"github.com/MKhiriev/go-app-config/inflector"
	"github.com/MKhiriev/go-app-config/logger"
	"github.com/MKhiriev/go-app-config/middleware"
	"github.com/MKhiriev/go-app-config/settings"
)

// Config is the root of the application configuration tree. It owns the
// primitive settings, the logger section, and one section per optional
// feature module (real when the module is bundled, a [NullSection]
// otherwise).
//
// A Config is mutable until [Config.Finalize] runs, after which every
// write anywhere in the tree fails. Mutation is single-writer; a finalized
// tree is safe for unsynchronized concurrent reads provided finalize
// completes before the tree is shared.
type Config struct {
	ownerName   string
	environment Environment

	store *settings.Store

	logger         *LoggerConfig
	loggerReplaced *logger.Logger
	loggerBuilt    *logger.Logger

	actions *Actions
	router  *Router
	views   *Views
	assets  *Assets

	finalized bool
}

type newOptions struct {
	gate    feature.Gate
	environ map[string]string
	block   func(*Config) error
}

// Option adjusts how [New] assembles a configuration tree.
type Option func(*newOptions)

// WithFeatureGate overrides the collaborator consulted for feature-module
// presence. The default is [feature.Default].
func WithFeatureGate(gate feature.Gate) Option {
	return func(o *newOptions) { o.gate = gate }
}

// WithEnviron substitutes the environment variables the tree reads during
// construction. The default is the process environment.
func WithEnviron(vars map[string]string) Option {
	return func(o *newOptions) { o.environ = vars }
}

// Configure registers a customization callback invoked with the new tree
// after defaults and environment values are in place, before New returns.
func Configure(block func(*Config) error) Option {
	return func(o *newOptions) { o.block = block }
}

// New constructs a configuration tree for the application identified by
// ownerName running in the given environment.
//
// Settings are populated from defaults, then from environment variables,
// then from the customization callback, in that order. Optional sections
// are selected once here, based on feature-module presence, and never
// change for the lifetime of the instance.
func New(ownerName string, environment Environment, opts ...Option) (*Config, error) {
	o := &newOptions{gate: feature.Default}
	for _, opt := range opts {
		opt(o)
	}

	c := &Config{
		ownerName:   ownerName,
		environment: environment,
		store:       newRootStore(),
		logger:      newLoggerConfig(environment),
	}

	if err := c.loadEnviron(o.environ); err != nil {
		return nil, err
	}

	if o.gate.Bundled(FeatureAssets) {
		c.assets = newAssets()
	}
	if o.gate.Bundled(FeatureActions) {
		c.actions = newActions()
	}
	if o.gate.Bundled(FeatureRouter) {
		c.router = newRouter(c)
	}
	if o.gate.Bundled(FeatureViews) {
		c.views = newViews()
	}

	if o.block != nil {
		if err := o.block(c); err != nil {
			return nil, fmt.Errorf("customize configuration: %w", err)
		}
	}

	return c, nil
}

func newRootStore() *settings.Store {
	return settings.NewStore(
		settings.Definition{
			Name: "root",
			Default: func() any {
				wd, err := os.Getwd()
				if err != nil {
					return "."
				}
				return wd
			},
			Constructor: rootPathValue,
		},
		settings.Definition{
			Name:        "base_url",
			Default:     func() any { return mustParseURL("http://0.0.0.0:2300") },
			Constructor: baseURLValue,
		},
		settings.Definition{
			Name:        "slices",
			Constructor: stringListValue,
		},
		settings.Definition{
			Name:        "shared_component_keys",
			Default:     func() any { return []string{"inflector", "logger", "routes", "settings"} },
			Constructor: stringListValue,
		},
		settings.Definition{
			Name:        "no_auto_register_paths",
			Default:     func() any { return []string{"entities"} },
			Constructor: stringListValue,
		},
		settings.Definition{
			Name:        "inflector",
			Default:     func() any { return inflector.New() },
			Constructor: inflectorValue,
		},
	)
}

func rootPathValue(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected path string, got %T", value)
	}
	return filepath.Clean(s), nil
}

func baseURLValue(value any) (any, error) {
	switch v := value.(type) {
	case *url.URL:
		u := *v
		return &u, nil
	case string:
		u, err := url.Parse(v)
		if err != nil {
			return nil, err
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("%q is not an absolute http(s) URL", v)
		}
		return u, nil
	default:
		return nil, fmt.Errorf("expected URL string, got %T", value)
	}
}

func inflectorValue(value any) (any, error) {
	rules, ok := value.(*inflector.Rules)
	if !ok {
		return nil, fmt.Errorf("expected *inflector.Rules, got %T", value)
	}
	return rules, nil
}

func mustParseURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}

// ── identity ──────────────────────────────────────────────────────────────────

// OwnerName returns the scope identifier this tree was built for.
func (c *Config) OwnerName() string { return c.ownerName }

// Environment returns the environment this tree was built for.
func (c *Config) Environment() Environment { return c.environment }

// Finalized reports whether the tree has been locked.
func (c *Config) Finalized() bool { return c.finalized }

// ── primitive settings ────────────────────────────────────────────────────────

// Root returns the application root path.
func (c *Config) Root() string { return getString(c.store, "root") }

// SetRoot assigns the application root path.
func (c *Config) SetRoot(path string) error { return c.store.Set("root", path) }

// BaseURL returns a copy of the configured base URL.
func (c *Config) BaseURL() *url.URL {
	v, _ := c.store.Lookup("base_url")
	u, ok := v.(*url.URL)
	if !ok {
		return nil
	}
	out := *u
	return &out
}

// SetBaseURL assigns the base URL from a string or *url.URL; malformed
// values fail with a [settings.CoercionError].
func (c *Config) SetBaseURL(value any) error { return c.store.Set("base_url", value) }

// Slices returns the configured slice names, or nil when unset (meaning
// all slices load).
func (c *Config) Slices() []string { return getStrings(c.store, "slices") }

// SetSlices restricts which application slices load.
func (c *Config) SetSlices(names ...string) error { return c.store.Set("slices", names) }

// SharedComponentKeys returns the keys of components every slice imports
// from the root container.
func (c *Config) SharedComponentKeys() []string {
	return getStrings(c.store, "shared_component_keys")
}

// AddSharedComponentKeys appends keys to the shared component list.
func (c *Config) AddSharedComponentKeys(keys ...string) error {
	return c.store.Set("shared_component_keys", append(c.SharedComponentKeys(), keys...))
}

// SetSharedComponentKeys replaces the shared component list.
func (c *Config) SetSharedComponentKeys(keys ...string) error {
	return c.store.Set("shared_component_keys", keys)
}

// NoAutoRegisterPaths returns the source paths excluded from component
// auto-registration.
func (c *Config) NoAutoRegisterPaths() []string {
	return getStrings(c.store, "no_auto_register_paths")
}

// SetNoAutoRegisterPaths replaces the excluded-path list.
func (c *Config) SetNoAutoRegisterPaths(paths ...string) error {
	return c.store.Set("no_auto_register_paths", paths)
}

// Inflector returns the current pluralization strategy.
func (c *Config) Inflector() *inflector.Rules {
	v, _ := c.store.Lookup("inflector")
	rules, _ := v.(*inflector.Rules)
	return rules
}

// Inflections rebuilds the inflector by running block against a fresh rule
// set. Calling it again discards earlier customizations: the last call
// wins, the calls do not accumulate.
func (c *Config) Inflections(block func(*inflector.Rules)) error {
	rules := inflector.New()
	if block != nil {
		block(rules)
	}
	return c.store.Set("inflector", rules)
}

// Put stores an ad-hoc setting that the tree does not declare itself.
// Such settings are readable back through [Config.Resolve].
func (c *Config) Put(name string, value any) error {
	return c.store.Put(name, value)
}

// Resolve is the fallback resolution path: it answers any setting name the
// tree knows, whether declared or added ad hoc with [Config.Put], and
// fails with a [settings.UnknownSettingError] otherwise.
//
// A declared setting that currently holds no value resolves like an
// unknown name: "slices" errors here while [Config.Slices] reports the
// same state as nil. Callers that need to distinguish "unset" from
// "undeclared" use the typed accessors.
func (c *Config) Resolve(name string) (any, error) {
	switch name {
	case "owner_name":
		return c.ownerName, nil
	case "environment":
		return c.environment, nil
	}
	return c.store.Get(name)
}

// ── sections ──────────────────────────────────────────────────────────────────

// Logger returns the logger section for pre-finalize tuning. It is always
// a real section.
func (c *Config) Logger() *LoggerConfig { return c.logger }

// SetLoggerInstance stores a full replacement logger. When set, it is
// returned by LoggerInstance instead of a materialized one. Like every
// other write, it fails with [settings.ErrFinalized] once the tree is
// finalized.
func (c *Config) SetLoggerInstance(l *logger.Logger) error {
	if c.finalized {
		return fmt.Errorf("set logger instance: %w", settings.ErrFinalized)
	}
	c.loggerReplaced = l
	return nil
}

// LoggerInstance returns the resolved logger: the replacement instance if
// one was stored, otherwise a logger materialized once from the logger
// section. Finalize resolves the logger eagerly, so on a finalized tree
// this is a pure read.
func (c *Config) LoggerInstance() *logger.Logger {
	if c.loggerReplaced != nil {
		return c.loggerReplaced
	}
	if c.loggerBuilt == nil {
		c.loggerBuilt = c.logger.Materialize(c.ownerName, c.environment)
	}
	return c.loggerBuilt
}

// Actions returns the actions section, or a NullSection when the actions
// feature module is not bundled.
func (c *Config) Actions() Section {
	if c.actions != nil {
		return c.actions
	}
	return NullSection{Feature: FeatureActions}
}

// ActionsConfig returns the typed actions section, failing with a
// [SectionUnavailableError] when the feature module is not bundled.
func (c *Config) ActionsConfig() (*Actions, error) {
	if c.actions == nil {
		return nil, &SectionUnavailableError{Feature: FeatureActions}
	}
	return c.actions, nil
}

// Router returns the router section, or a NullSection when the router
// feature module is not bundled.
func (c *Config) Router() Section {
	if c.router != nil {
		return c.router
	}
	return NullSection{Feature: FeatureRouter}
}

// RouterConfig returns the typed router section, failing with a
// [SectionUnavailableError] when the feature module is not bundled.
func (c *Config) RouterConfig() (*Router, error) {
	if c.router == nil {
		return nil, &SectionUnavailableError{Feature: FeatureRouter}
	}
	return c.router, nil
}

// Views returns the views section, or a NullSection when the views
// feature module is not bundled.
func (c *Config) Views() Section {
	if c.views != nil {
		return c.views
	}
	return NullSection{Feature: FeatureViews}
}

// ViewsConfig returns the typed views section, failing with a
// [SectionUnavailableError] when the feature module is not bundled.
func (c *Config) ViewsConfig() (*Views, error) {
	if c.views == nil {
		return nil, &SectionUnavailableError{Feature: FeatureViews}
	}
	return c.views, nil
}

// Assets returns the assets section, or a NullSection when the assets
// feature module is not bundled.
func (c *Config) Assets() Section {
	if c.assets != nil {
		return c.assets
	}
	return NullSection{Feature: FeatureAssets}
}

// AssetsConfig returns the typed assets section, failing with a
// [SectionUnavailableError] when the feature module is not bundled.
func (c *Config) AssetsConfig() (*Assets, error) {
	if c.assets == nil {
		return nil, &SectionUnavailableError{Feature: FeatureAssets}
	}
	return c.assets, nil
}

// Middleware returns the stack owned by the router section, or nil when
// the router feature module is not bundled. It is non-nil exactly when
// Router() is a real section.
func (c *Config) Middleware() *middleware.Stack {
	if c.router == nil {
		return nil
	}
	return c.router.stack
}

// ── helpers ───────────────────────────────────────────────────────────────────

func getString(s *settings.Store, name string) string {
	v, _ := s.Lookup(name)
	str, _ := v.(string)
	return str
}

func getStrings(s *settings.Store, name string) []string {
	v, ok := s.Lookup(name)
	if !ok {
		return nil
	}
	list, _ := v.([]string)
	return append([]string(nil), list...)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
