// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appconfig

import (
	"github.com/MKhiriev/go-app-config/middleware"
	"github.com/MKhiriev/go-app-config/middleware/bodyparser"
)

// Finalize transitions the tree from mutable to finalized. Sections lock
// first, the logger resolves from its locked section, then the body-parser
// post-processing runs against the final section state, then the root
// settings lock. After the first call every write
// anywhere in the tree fails; later calls are no-ops, so the post-
// processing never runs twice.
//
// Finalize must complete before the tree is shared across goroutines; a
// finalized tree needs no further synchronization for reads.
func (c *Config) Finalize() {
	if c.finalized {
		return
	}

	c.Assets().Finalize()
	c.Actions().Finalize()
	c.Views().Finalize()
	c.logger.Finalize()
	c.Router().Finalize()

	// Resolve the logger from the locked logger section now, so
	// LoggerInstance on the finalized tree performs no writes.
	if c.loggerReplaced == nil && c.loggerBuilt == nil {
		c.loggerBuilt = c.logger.Materialize(c.ownerName, c.environment)
	}

	c.installBodyParser()

	c.store.Finalize()
	c.finalized = true
}

// installBodyParser installs the body-parsing middleware when the actions
// section declares formats a parser exists for. It runs once per tree,
// between the section locks and the root lock, so it can still mutate the
// middleware stack while reading final section state.
func (c *Config) installBodyParser() {
	if c.actions == nil || c.router == nil {
		return
	}

	formats := c.actions.Formats()
	if len(formats) == 0 {
		return
	}

	stack := c.router.stack
	for _, entry := range stack.At(middleware.RootPath) {
		if entry.Name == bodyparser.Name {
			return
		}
	}

	kinds := make(map[string][]string)
	for _, kind := range bodyparser.SupportedKinds {
		if mimeTypes, ok := formats[kind]; ok && len(mimeTypes) > 0 {
			kinds[kind] = mimeTypes
		}
	}
	if len(kinds) == 0 {
		return
	}

	stack.Use(bodyparser.Name, bodyparser.New(kinds), kinds)
}
