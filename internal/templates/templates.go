// Package templates holds the project template bundled into the binary.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed all:biome
var bundle embed.FS

// BundleRoot is the directory of the bundled template inside Bundle.
const BundleRoot = "biome"

// Bundled returns the bundled template tree rooted at its top directory.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundle, BundleRoot)
	if err != nil {
		// BundleRoot is embedded at build time.
		panic(fmt.Sprintf("templates: bundled template missing: %v", err))
	}
	return sub
}

// Open returns the template to copy: the directory dir when set, the
// bundled template otherwise.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return Bundled(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template path is not a directory: %s", dir)
	}
	return os.DirFS(dir), nil
}
