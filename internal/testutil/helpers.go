// Package testutil provides shared test helpers for packages that load
// the repository fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root, assuming the
// test runs from a package directory two levels below it (internal/x).
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// Fixture returns the path of a file below the fixtures directory and
// fails the test if it does not exist.
func Fixture(t *testing.T, parts ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{RepoRoot(t), "fixtures"}, parts...)...)
	_, err := os.Stat(path)
	require.NoError(t, err, "fixture %s", path)
	return path
}

// WriteFile writes content to name inside a fresh temporary directory and
// returns its path.
func WriteFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
