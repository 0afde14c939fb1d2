// Package project creates a new project directory from a template tree and
// pins the requested dependency version in its manifest.
package project

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/tacogips/create-repro/internal/debug"
	"github.com/tacogips/create-repro/internal/manifest"
)

// Options configures a Materializer.
type Options struct {
	// Template is the tree copied into every new project.
	Template fs.FS
	// Fs is the filesystem projects are written to. Defaults to the OS filesystem.
	Fs afero.Fs
	// Dependency is the devDependencies entry set to the chosen version.
	Dependency string
	// BaseDir is the directory new projects are created in.
	BaseDir string
	// Force allows copying into a directory that already holds files.
	Force bool
	// Ignore lists glob patterns of template entries that are not copied.
	Ignore []string
}

// Result describes a materialized project.
type Result struct {
	// Root is the absolute project directory.
	Root string
	// Files lists the copied files relative to Root, in walk order.
	Files []string
	// Warnings are non-fatal findings such as manifest schema issues.
	Warnings []string
}

// Materializer creates projects from a template.
type Materializer struct {
	opts Options
	fs   afero.Fs
}

// New creates a Materializer.
func New(opts Options) *Materializer {
	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Materializer{opts: opts, fs: fsys}
}

// Root returns the directory a project called name is created in.
func (m *Materializer) Root(name string) string {
	return filepath.Join(m.opts.BaseDir, name)
}

// Materialize creates BaseDir/name, copies the template into it and sets
// the dependency version in its manifest. Nothing is rolled back when a
// step fails.
func (m *Materializer) Materialize(ctx context.Context, name, version string) (*Result, error) {
	root := m.Root(name)
	debug.DebugSection("[project] Materialize")
	debug.DebugValue("[project] Root", root)
	debug.DebugValue("[project] Version", version)

	if err := m.prepareRoot(root); err != nil {
		return nil, err
	}

	result := &Result{Root: root}
	if err := copyTree(ctx, m.opts.Template, m.fs, root, m.opts.Ignore, result); err != nil {
		return nil, err
	}
	debug.DebugValue("[project] Files copied", len(result.Files))

	manifestPath := filepath.Join(root, manifest.FileName)
	if err := manifest.PatchDevDependency(m.fs, manifestPath, m.opts.Dependency, version); err != nil {
		return nil, &ProjectError{Type: ManifestFailed, Path: manifestPath, Message: "failed to update manifest", Cause: err}
	}

	validation, err := manifest.ValidateFile(m.fs, manifestPath)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not validate %s: %v", manifest.FileName, err))
	} else if !validation.Valid {
		for _, issue := range validation.Issues {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s %s", manifest.FileName, issue))
		}
	}

	return result, nil
}

// prepareRoot creates root and its parents. An existing empty directory is
// reused; a non-empty one is refused unless Force is set.
func (m *Materializer) prepareRoot(root string) error {
	if info, err := m.fs.Stat(root); err == nil {
		if !info.IsDir() {
			return &ProjectError{Type: CreateFailed, Path: root, Message: "target exists and is not a directory"}
		}
		entries, err := afero.ReadDir(m.fs, root)
		if err != nil {
			return &ProjectError{Type: CreateFailed, Path: root, Message: "failed to read target directory", Cause: err}
		}
		if len(entries) > 0 && !m.opts.Force {
			return &ProjectError{Type: TargetNotEmpty, Path: root, Message: "target directory is not empty (use --force to copy into it)"}
		}
	}

	if err := m.fs.MkdirAll(root, 0755); err != nil {
		return &ProjectError{Type: CreateFailed, Path: root, Message: "failed to create project directory", Cause: err}
	}
	return nil
}
