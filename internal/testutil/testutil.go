// Package testutil provides test helpers for create-vite tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// configEnv lists the environment variables that feed the config loader.
var configEnv = []string{
	"CREATE_VITE_TEMPLATE",
	"CREATE_VITE_TEMPLATE_DIR",
	"CREATE_VITE_PACKAGE_MANAGER",
	"CREATE_VITE_PROJECT_NAME",
}

// IsolateConfig points HOME and CREATE_VITE_CONFIG at a fresh temporary
// directory and clears CREATE_VITE_* overrides, so a developer's own
// configuration never leaks into a test. It returns the config file path,
// which does not exist yet.
func IsolateConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	configFile := filepath.Join(home, ".create-vite", "config.yaml")

	t.Setenv("HOME", home)
	t.Setenv("CREATE_VITE_CONFIG", configFile)
	for _, key := range configEnv {
		// Setenv registers the restore; the variable itself must be unset.
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
	return configFile
}

// WriteFile creates path, and any missing parent directories, with content.
func WriteFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ListDir returns the entry names of dir in sorted order.
func ListDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// Files returns every regular file under root as a sorted, slash-separated
// path relative to root.
func Files(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk %s: %v", root, err)
	}
	sort.Strings(files)
	return files
}
