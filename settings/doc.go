// Package settings implements the finalizable key/value store that backs
// every configuration object in this module.
//
// A Store holds a fixed set of declared settings ([Definition]) plus an
// open-ended area for ad-hoc settings added at runtime with [Store.Put].
// Declared settings may carry a default and a [Constructor] that coerces
// every assigned value; assignment failures surface immediately as a
// [CoercionError]. Once [Store.Finalize] has been called the store rejects
// all writes with [ErrFinalized] — the transition is one-way.
package settings
