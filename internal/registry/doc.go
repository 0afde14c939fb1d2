// Package registry resolves the versions of a package published on an
// npm-compatible registry. Lookup failures are not fatal for callers of
// FetchCatalog: an unavailable registry yields an empty catalog so the
// scaffolding form can fall back to free-text version entry.
package registry
