package project

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/tacogips/create-repro/internal/debug"
)

// copyTree copies every file of src into dst on dstFs, creating
// subdirectories as needed. File contents are copied unchanged. Entries
// matching an ignore pattern are skipped, directories with everything below
// them.
func copyTree(ctx context.Context, src fs.FS, dstFs afero.Fs, dst string, ignore []string, result *Result) error {
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == "." {
			return nil
		}
		if shouldIgnore(path, ignore) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			if err := dstFs.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		}

		content, err := fs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat template file %s: %w", path, err)
		}

		if err := afero.WriteFile(dstFs, target, content, fileMode(info.Mode())); err != nil {
			return fmt.Errorf("failed to write file %s: %w", target, err)
		}

		result.Files = append(result.Files, filepath.FromSlash(path))
		debug.DebugValue("[project] Copied", path)
		return nil
	})
	if err != nil {
		return &ProjectError{Type: CopyFailed, Path: dst, Message: "failed to copy template", Cause: err}
	}
	return nil
}

// fileMode returns the mode for a copied file. Embedded files are read-only,
// so only the executable bit of the source is carried over.
func fileMode(src fs.FileMode) fs.FileMode {
	if src&0111 != 0 {
		return 0755
	}
	return 0644
}
