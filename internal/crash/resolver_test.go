package crash

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func TestResolvePath_NonexistentUnchanged(t *testing.T) {
	t.Parallel()
	target := filepath.Join(t.TempDir(), "report.log")

	assert.Equal(t, target, ResolvePath(target, false))
}

func TestResolvePath_OverwriteReusesExisting(t *testing.T) {
	t.Parallel()
	target := filepath.Join(t.TempDir(), "report.log")
	touch(t, target)

	assert.Equal(t, target, ResolvePath(target, true))
}

func TestResolvePath_IncrementsOnCollision(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := filepath.Join(dir, "report.log")
	touch(t, target)

	got := ResolvePath(target, false)
	assert.Equal(t, filepath.Join(dir, "report (1).log"), got)

	touch(t, got)
	assert.Equal(t, filepath.Join(dir, "report (2).log"), ResolvePath(target, false))
}

func TestResolvePath_SkipsOccupiedCounters(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := filepath.Join(dir, "report.log")
	touch(t, target)
	touch(t, filepath.Join(dir, "report (1).log"))
	touch(t, filepath.Join(dir, "report (2).log"))

	assert.Equal(t, filepath.Join(dir, "report (3).log"), ResolvePath(target, false))
}

func TestResolvePath_NoExtension(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := filepath.Join(dir, "crashdump")
	touch(t, target)

	assert.Equal(t, filepath.Join(dir, "crashdump (1)"), ResolvePath(target, false))
}
