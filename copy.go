// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appconfig

// Copy returns a deep, independent duplicate of the tree, intended for
// deriving per-slice configuration from the application root.
//
// Every owned store is duplicated, so list- and map-valued settings on the
// copy and the source can be mutated without cross-talk. Sections keep
// their variant: a real section is cloned, a null section stays null. The
// router's parent back-reference is repointed at the new tree — the one
// deliberate place where the copy walks away from pure value copying.
//
// The copy is always mutable, even when the source was already finalized;
// it is finalized on its own schedule, independently of the source. A
// stored replacement logger instance is carried over as-is, while the
// lazily-materialized logger cache is reset so the copy materializes from
// its own logger section.
func (c *Config) Copy() *Config {
	out := &Config{
		ownerName:      c.ownerName,
		environment:    c.environment,
		store:          c.store.Copy(),
		logger:         c.logger.copy(),
		loggerReplaced: c.loggerReplaced,
	}

	if c.actions != nil {
		out.actions = c.actions.copy()
	}
	if c.views != nil {
		out.views = c.views.copy()
	}
	if c.assets != nil {
		out.assets = c.assets.copy()
	}
	if c.router != nil {
		out.router = c.router.copy(out)
	}

	return out
}
