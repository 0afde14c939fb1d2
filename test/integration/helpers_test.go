package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/tacogips/create-repro/internal/shell"
)

// fixtureDir returns the absolute path of a fixture template.
func fixtureDir(t *testing.T, name string) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("../fixtures/templates", name))
	if err != nil {
		t.Fatalf("failed to get fixture path: %v", err)
	}
	return dir
}

// readFixtureFile returns the content of a file of a fixture template.
func readFixtureFile(t *testing.T, fixture, rel string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(fixtureDir(t, fixture), filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("failed to read fixture file %s: %v", rel, err)
	}
	return data
}

// newRegistryServer serves abbreviated package metadata for pkg.
func newRegistryServer(t *testing.T, pkg, latest string, versions ...string) *httptest.Server {
	t.Helper()
	doc := map[string]interface{}{
		"name":      pkg,
		"dist-tags": map[string]string{"latest": latest},
	}
	vs := make(map[string]interface{}, len(versions))
	for _, v := range versions {
		vs[v] = map[string]string{"version": v}
	}
	doc["versions"] = vs

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(doc); err != nil {
			t.Errorf("failed to encode metadata: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// missingHostingCLI is a runner on which no command is installed.
type missingHostingCLI struct {
	calls []shell.Command
}

func (m *missingHostingCLI) Run(_ context.Context, cmd shell.Command) error {
	m.calls = append(m.calls, cmd)
	return shell.ErrNotFound
}
