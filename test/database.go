// Package test contains helpers shared by the tests of all packages.
package test

import (
	"path/filepath"
	"testing"
)

// TmpFile returns the DSN of a fresh database file in a directory that is
// removed when the test finishes.
//
// Tests running the weekly transfer concurrently need the busy timeout.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "weekbudget.db") + "?_pragma=busy_timeout(5000)"
}
