// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-app-config/feature"
	"github.com/MKhiriev/go-app-config/logger"
	"github.com/MKhiriev/go-app-config/middleware"
	"github.com/MKhiriev/go-app-config/middleware/bodyparser"
	"github.com/MKhiriev/go-app-config/settings"
)

// ── finalize lock ─────────────────────────────────────────────────────────────

// TestFinalize_LocksWholeTree verifies that after Finalize every setting
// write fails, on the root and on every real section.
func TestFinalize_LocksWholeTree(t *testing.T) {
	cfg := newTestConfig(t)
	actions, err := cfg.ActionsConfig()
	require.NoError(t, err)

	cfg.Finalize()

	assert.True(t, cfg.Finalized())
	assert.ErrorIs(t, cfg.SetRoot("/tmp"), settings.ErrFinalized)
	assert.ErrorIs(t, cfg.SetSlices("admin"), settings.ErrFinalized)
	assert.ErrorIs(t, cfg.AddSharedComponentKeys("notifications"), settings.ErrFinalized)
	assert.ErrorIs(t, cfg.Put("vendor.key", 1), settings.ErrFinalized)

	assert.ErrorIs(t, actions.SetDefaultFormat("json"), settings.ErrFinalized)
	assert.ErrorIs(t, cfg.Actions().Set("default_format", "json"), settings.ErrFinalized)
	assert.ErrorIs(t, cfg.Router().Set("trailing_slash", true), settings.ErrFinalized)
	assert.ErrorIs(t, cfg.Views().Set("layout", "admin"), settings.ErrFinalized)
	assert.ErrorIs(t, cfg.Assets().Set("compile", true), settings.ErrFinalized)
	assert.ErrorIs(t, cfg.Logger().SetLevel("error"), settings.ErrFinalized)

	// Replacing the logger instance is a write like any other.
	resolved := cfg.LoggerInstance()
	assert.ErrorIs(t, cfg.SetLoggerInstance(logger.Nop()), settings.ErrFinalized)
	assert.Same(t, resolved, cfg.LoggerInstance())

	// Reads keep working.
	assert.NotEmpty(t, cfg.Root())
	assert.Equal(t, "html", actions.DefaultFormat())
}

// TestFinalize_NullSectionsAreNoOps verifies that finalizing a tree with
// absent features does not fail.
func TestFinalize_NullSectionsAreNoOps(t *testing.T) {
	cfg, err := New("bookshelf", Test,
		WithFeatureGate(feature.StaticGate{}),
		WithEnviron(map[string]string{}),
	)
	require.NoError(t, err)

	cfg.Finalize()

	assert.True(t, cfg.Finalized())
	assert.ErrorIs(t, cfg.SetRoot("/tmp"), settings.ErrFinalized)
}

// ── logger resolution ─────────────────────────────────────────────────────────

// TestFinalize_ResolvesLogger verifies that the logger is materialized
// during Finalize, so LoggerInstance on a finalized tree is a pure read.
func TestFinalize_ResolvesLogger(t *testing.T) {
	cfg := newTestConfig(t)

	cfg.Finalize()

	require.NotNil(t, cfg.loggerBuilt)
	assert.Same(t, cfg.loggerBuilt, cfg.LoggerInstance())
	assert.Same(t, cfg.LoggerInstance(), cfg.LoggerInstance())
}

// TestFinalize_KeepsReplacementLogger verifies that a replacement stored
// before finalize survives it and suppresses materialization.
func TestFinalize_KeepsReplacementLogger(t *testing.T) {
	cfg := newTestConfig(t)
	replacement := logger.Nop()
	require.NoError(t, cfg.SetLoggerInstance(replacement))

	cfg.Finalize()

	assert.Nil(t, cfg.loggerBuilt)
	assert.Same(t, replacement, cfg.LoggerInstance())
}

// ── body-parser post-processing ───────────────────────────────────────────────

// TestFinalize_InstallsBodyParserForParseableFormats verifies the format
// intersection: html is ignored, json produces exactly one entry carrying
// the kind-to-MIME mapping.
func TestFinalize_InstallsBodyParserForParseableFormats(t *testing.T) {
	cfg := newTestConfig(t)
	actions, err := cfg.ActionsConfig()
	require.NoError(t, err)
	require.NoError(t, actions.SetFormat("html", "text/html"))
	require.NoError(t, actions.SetFormat("json", "application/json"))

	cfg.Finalize()

	entries := cfg.Middleware().At(middleware.RootPath)
	require.Len(t, entries, 1)
	assert.Equal(t, bodyparser.Name, entries[0].Name)
	assert.Equal(t, map[string][]string{"json": {"application/json"}}, entries[0].Config)
}

// TestFinalize_SkipsBodyParserWithoutParseableFormats verifies that a tree
// declaring only non-parseable formats installs nothing.
func TestFinalize_SkipsBodyParserWithoutParseableFormats(t *testing.T) {
	cfg := newTestConfig(t)
	actions, err := cfg.ActionsConfig()
	require.NoError(t, err)
	require.NoError(t, actions.SetFormat("html", "text/html"))

	cfg.Finalize()

	assert.Empty(t, cfg.Middleware().At(middleware.RootPath))
}

func TestFinalize_SkipsBodyParserWithoutFormats(t *testing.T) {
	cfg := newTestConfig(t)

	cfg.Finalize()

	assert.Zero(t, cfg.Middleware().Len())
}

func TestFinalize_SkipsBodyParserWhenActionsAbsent(t *testing.T) {
	cfg, err := New("bookshelf", Test,
		WithFeatureGate(feature.StaticGate{FeatureRouter: true}),
		WithEnviron(map[string]string{}),
	)
	require.NoError(t, err)

	cfg.Finalize()

	assert.Zero(t, cfg.Middleware().Len())
}

// TestFinalize_RespectsExistingBodyParser verifies that a parser mounted
// by hand at the root path suppresses the automatic install.
func TestFinalize_RespectsExistingBodyParser(t *testing.T) {
	cfg := newTestConfig(t)
	actions, err := cfg.ActionsConfig()
	require.NoError(t, err)
	require.NoError(t, actions.SetFormat("json", "application/json"))

	manual := map[string][]string{"json": {"application/vnd.api+json"}}
	cfg.Middleware().Use(bodyparser.Name, bodyparser.New(manual), manual)

	cfg.Finalize()

	entries := cfg.Middleware().At(middleware.RootPath)
	require.Len(t, entries, 1)
	assert.Equal(t, manual, entries[0].Config)
}

// ── idempotency ───────────────────────────────────────────────────────────────

// TestFinalize_Idempotent verifies that a second Finalize leaves the
// middleware stack exactly as the first one did.
func TestFinalize_Idempotent(t *testing.T) {
	cfg := newTestConfig(t)
	actions, err := cfg.ActionsConfig()
	require.NoError(t, err)
	require.NoError(t, actions.SetFormat("json", "application/json"))

	cfg.Finalize()
	after := cfg.Middleware().Len()
	cfg.Finalize()

	assert.Equal(t, after, cfg.Middleware().Len())
	require.Len(t, cfg.Middleware().At(middleware.RootPath), 1)
}
