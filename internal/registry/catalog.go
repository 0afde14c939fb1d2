package registry

import (
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Catalog is the ordered list of published versions, newest first.
// A nil Catalog means the lookup was unavailable.
type Catalog []string

// IndexOf returns the position of version in the catalog, or -1.
func (c Catalog) IndexOf(version string) int {
	for i, v := range c {
		if v == version {
			return i
		}
	}
	return -1
}

// NewCatalog orders versions newest first by semantic version precedence.
// Identifiers that are not semantic versions follow all semantic ones in
// lexical order. Duplicates are dropped.
func NewCatalog(versions []string) Catalog {
	type entry struct {
		raw string
		ver *semver.Version
	}

	seen := make(map[string]bool, len(versions))
	var valid []entry
	var other []string
	for _, raw := range versions {
		if raw == "" || seen[raw] {
			continue
		}
		seen[raw] = true

		v, err := semver.NewVersion(raw)
		if err != nil {
			other = append(other, raw)
			continue
		}
		valid = append(valid, entry{raw: raw, ver: v})
	}

	sort.SliceStable(valid, func(i, j int) bool {
		if cmp := valid[i].ver.Compare(valid[j].ver); cmp != 0 {
			return cmp > 0
		}
		return valid[i].raw < valid[j].raw
	})
	sort.Strings(other)

	catalog := make(Catalog, 0, len(valid)+len(other))
	for _, e := range valid {
		catalog = append(catalog, e.raw)
	}
	return append(catalog, other...)
}

// Stable returns the catalog without prerelease versions. Non-semantic
// identifiers are dropped as well.
func (c Catalog) Stable() Catalog {
	var stable Catalog
	for _, raw := range c {
		v, err := semver.NewVersion(raw)
		if err != nil || v.Prerelease() != "" {
			continue
		}
		stable = append(stable, raw)
	}
	return stable
}
