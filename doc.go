// Package appconfig implements the hierarchical, lifecycle-gated
// configuration tree of a modular application.
//
// A [Config] aggregates primitive settings (root path, base URL, slices,
// shared component keys, inflector) with one configuration section per
// optional feature module: actions, router, views, and assets. Sections
// are chosen once at construction time — real when the feature module is
// bundled, a [NullSection] otherwise — so callers always hold a usable
// [Section] and never branch on presence.
//
// The tree is built mutable:
//
//	cfg, err := appconfig.New("bookshelf", appconfig.Development,
//		appconfig.WithFeatureGate(gate),
//		appconfig.Configure(func(c *appconfig.Config) error {
//			return c.SetBaseURL("https://bookshelf.example.com")
//		}),
//	)
//
// and transitions irreversibly to finalized via [Config.Finalize], which
// cascades through every section, installs the body-parsing middleware
// derived from the actions section's formats, and then locks the root
// settings. Writes after finalize fail with [settings.ErrFinalized].
//
// [Config.Copy] deep-clones the tree for per-slice customization; the
// copy shares no mutable state with its source except the router's parent
// back-reference, which is repointed at the new tree.
package appconfig
