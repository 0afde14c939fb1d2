package project

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"

	"github.com/tacogips/create-repro/internal/manifest"
	"github.com/tacogips/create-repro/internal/templates"
)

const testManifest = "{\n\t\"name\": \"fixture\",\n\t\"private\": true,\n\t\"devDependencies\": {\n\t\t\"@biomejs/biome\": \"latest\",\n\t\t\"typescript\": \"^5.0.0\"\n\t}\n}\n"

func testTemplate() fstest.MapFS {
	return fstest.MapFS{
		"package.json":        {Data: []byte(testManifest), Mode: 0644},
		"biome.json":          {Data: []byte("{\"formatter\":{\"enabled\":true}}")},
		"src/index.ts":        {Data: []byte("export const answer = 42;\n")},
		"src/nested/deep.txt": {Data: []byte("deep\r\nwith crlf")},
		"scripts/run.sh":      {Data: []byte("#!/bin/sh\necho hi\n"), Mode: 0755},
	}
}

func newTestMaterializer(t *testing.T, base string, force bool) *Materializer {
	t.Helper()
	return New(Options{
		Template:   testTemplate(),
		Dependency: "@biomejs/biome",
		BaseDir:    base,
		Force:      force,
	})
}

func TestMaterializeCopiesTemplate(t *testing.T) {
	base := t.TempDir()
	m := newTestMaterializer(t, base, false)

	result, err := m.Materialize(context.Background(), "demo", "1.9.4")
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	if result.Root != filepath.Join(base, "demo") {
		t.Errorf("Root = %q, want %q", result.Root, filepath.Join(base, "demo"))
	}
	if len(result.Files) != 5 {
		t.Errorf("copied %d files, want 5: %v", len(result.Files), result.Files)
	}

	for name, file := range testTemplate() {
		if name == manifest.FileName {
			continue
		}
		got, err := os.ReadFile(filepath.Join(result.Root, filepath.FromSlash(name)))
		if err != nil {
			t.Fatalf("failed to read %s: %v", name, err)
		}
		if string(got) != string(file.Data) {
			t.Errorf("%s content = %q, want %q", name, got, file.Data)
		}
	}
}

func TestMaterializePatchesManifest(t *testing.T) {
	base := t.TempDir()
	m := newTestMaterializer(t, base, false)

	result, err := m.Materialize(context.Background(), "demo", "1.9.4")
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(result.Root, manifest.FileName))
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}

	want := strings.Replace(testManifest, "\"latest\"", "\"1.9.4\"", 1)
	if string(data) != want {
		t.Errorf("manifest =\n%s\nwant\n%s", data, want)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestMaterializeFileModes(t *testing.T) {
	base := t.TempDir()
	m := newTestMaterializer(t, base, false)

	result, err := m.Materialize(context.Background(), "demo", "1.9.4")
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(result.Root, "scripts", "run.sh"))
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm()&0100 == 0 {
		t.Errorf("run.sh mode = %v, want executable", info.Mode().Perm())
	}

	info, err = os.Stat(filepath.Join(result.Root, "src", "index.ts"))
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm()&0200 == 0 {
		t.Errorf("index.ts mode = %v, want writable", info.Mode().Perm())
	}
}

func TestMaterializeExistingDirectory(t *testing.T) {
	tests := []struct {
		name     string
		existing map[string]string
		force    bool
		wantErr  bool
	}{
		{name: "empty directory is reused"},
		{name: "non-empty directory is refused", existing: map[string]string{"keep.txt": "keep"}, wantErr: true},
		{name: "non-empty directory with force", existing: map[string]string{"keep.txt": "keep"}, force: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			root := filepath.Join(base, "demo")
			if err := os.MkdirAll(root, 0755); err != nil {
				t.Fatal(err)
			}
			for name, content := range tt.existing {
				if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0644); err != nil {
					t.Fatal(err)
				}
			}

			_, err := newTestMaterializer(t, base, tt.force).Materialize(context.Background(), "demo", "2.0.0")
			if tt.wantErr {
				var projErr *ProjectError
				if !errors.As(err, &projErr) || projErr.Type != TargetNotEmpty {
					t.Fatalf("Materialize() error = %v, want TargetNotEmpty", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Materialize() error = %v", err)
			}
			for name, content := range tt.existing {
				got, err := os.ReadFile(filepath.Join(root, name))
				if err != nil || string(got) != content {
					t.Errorf("existing file %s = %q, %v; want preserved", name, got, err)
				}
			}
		})
	}
}

func TestMaterializeTargetIsFile(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "demo"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := newTestMaterializer(t, base, true).Materialize(context.Background(), "demo", "1.0.0")
	var projErr *ProjectError
	if !errors.As(err, &projErr) || projErr.Type != CreateFailed {
		t.Fatalf("Materialize() error = %v, want CreateFailed", err)
	}
}

func TestMaterializeNameWithSpace(t *testing.T) {
	base := t.TempDir()
	result, err := newTestMaterializer(t, base, false).Materialize(context.Background(), "my demo", "1.0.0")
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if filepath.Base(result.Root) != "my demo" {
		t.Errorf("Root = %q", result.Root)
	}
}

func TestMaterializeMissingSection(t *testing.T) {
	tmpl := fstest.MapFS{
		"package.json": {Data: []byte("{\n\t\"name\": \"x\"\n}\n")},
	}
	m := New(Options{Template: tmpl, Dependency: "@biomejs/biome", BaseDir: t.TempDir()})

	_, err := m.Materialize(context.Background(), "demo", "1.0.0")
	var projErr *ProjectError
	if !errors.As(err, &projErr) || projErr.Type != ManifestFailed {
		t.Fatalf("Materialize() error = %v, want ManifestFailed", err)
	}

	var manErr *manifest.ManifestError
	if !errors.As(err, &manErr) {
		t.Errorf("expected wrapped ManifestError, got %v", err)
	}
}

func TestMaterializeMissingManifest(t *testing.T) {
	tmpl := fstest.MapFS{"README.md": {Data: []byte("# hi\n")}}
	m := New(Options{Template: tmpl, Dependency: "@biomejs/biome", BaseDir: t.TempDir()})

	if _, err := m.Materialize(context.Background(), "demo", "1.0.0"); err == nil {
		t.Fatal("expected error for template without manifest")
	}
}

func TestMaterializeSchemaWarnings(t *testing.T) {
	tmpl := fstest.MapFS{
		"package.json": {Data: []byte("{\n\t\"devDependencies\": {\n\t\t\"@biomejs/biome\": \"latest\"\n\t}\n}\n")},
	}
	m := New(Options{Template: tmpl, Dependency: "@biomejs/biome", BaseDir: t.TempDir()})

	result, err := m.Materialize(context.Background(), "demo", "1.0.0")
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a schema warning for manifest without name")
	}
}

func TestMaterializeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestMaterializer(t, t.TempDir(), false).Materialize(ctx, "demo", "1.0.0")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Materialize() error = %v, want context.Canceled", err)
	}
}

func TestMaterializeBundledTemplate(t *testing.T) {
	m := New(Options{Template: templates.Bundled(), Dependency: "@biomejs/biome", BaseDir: t.TempDir()})

	result, err := m.Materialize(context.Background(), "demo", "1.9.4")
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	doc, err := os.ReadFile(filepath.Join(result.Root, manifest.FileName))
	if err != nil {
		t.Fatal(err)
	}
	var parsed struct {
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(doc, &parsed); err != nil {
		t.Fatal(err)
	}
	if got := parsed.DevDependencies["@biomejs/biome"]; got != "1.9.4" {
		t.Errorf("dependency = %q, want 1.9.4", got)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("bundled template produced warnings: %v", result.Warnings)
	}
}

func TestMaterializeIgnorePatterns(t *testing.T) {
	tmpl := testTemplate()
	tmpl[".git/HEAD"] = &fstest.MapFile{Data: []byte("ref: refs/heads/main\n")}
	tmpl["node_modules/pkg/index.js"] = &fstest.MapFile{Data: []byte("module.exports = 1;\n")}
	tmpl["debug.log"] = &fstest.MapFile{Data: []byte("log")}

	m := New(Options{
		Template:   tmpl,
		Dependency: "@biomejs/biome",
		BaseDir:    t.TempDir(),
		Ignore:     append(DefaultIgnorePatterns(), "*.log"),
	})

	result, err := m.Materialize(context.Background(), "demo", "1.0.0")
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	for _, name := range []string{".git", "node_modules", "debug.log"} {
		if _, err := os.Stat(filepath.Join(result.Root, name)); !os.IsNotExist(err) {
			t.Errorf("%s was copied", name)
		}
	}
	if len(result.Files) != 5 {
		t.Errorf("copied %d files, want 5", len(result.Files))
	}
}

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{path: ".git", pattern: ".git", want: true},
		{path: "packages/a/node_modules", pattern: "node_modules", want: true},
		{path: "logs/debug.log", pattern: "*.log", want: true},
		{path: "src/index.ts", pattern: "*.log", want: false},
		{path: "src/index.ts", pattern: "src/*.ts", want: true},
		{path: "lib/src/index.ts", pattern: "src/*.ts", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path+"~"+tt.pattern, func(t *testing.T) {
			if got := matchesPattern(tt.path, tt.pattern); got != tt.want {
				t.Errorf("matchesPattern(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMaterializeMemFs(t *testing.T) {
	fsys := afero.NewMemMapFs()
	m := New(Options{
		Template:   testTemplate(),
		Fs:         fsys,
		Dependency: "@biomejs/biome",
		BaseDir:    "/work",
	})

	result, err := m.Materialize(context.Background(), "demo", "1.9.4")
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	got, err := afero.ReadFile(fsys, filepath.Join(result.Root, "src", "nested", "deep.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "deep\r\nwith crlf" {
		t.Errorf("deep.txt = %q", got)
	}

	manifestData, err := afero.ReadFile(fsys, filepath.Join(result.Root, manifest.FileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(manifestData), "\"@biomejs/biome\": \"1.9.4\"") {
		t.Errorf("manifest not patched:\n%s", manifestData)
	}

	if _, err := os.Stat(filepath.Join("/work", "demo")); !os.IsNotExist(err) {
		t.Error("materialize wrote to the OS filesystem")
	}
}
