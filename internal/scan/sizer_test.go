package scan

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/gitcleaner/internal/logger"
)

func TestSizeRegularFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "app.log")
	mkFile(t, path, 2048)

	s := NewSizer(4, testLogger())
	assert.Equal(t, int64(2048), s.Size(path))
}

func TestSizeDirectoryRecursive(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "node_modules")
	mkFile(t, filepath.Join(dir, "a.js"), 100)
	mkFile(t, filepath.Join(dir, "pkg", "b.js"), 200)
	mkFile(t, filepath.Join(dir, "pkg", "deep", "c.js"), 300)
	mkDir(t, filepath.Join(dir, "empty"))

	s := NewSizer(4, testLogger())
	assert.Equal(t, int64(600), s.Size(dir))
}

func TestSizeEmptyDirectory(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "dist")
	mkDir(t, dir)

	s := NewSizer(4, testLogger())
	assert.Equal(t, int64(0), s.Size(dir))
}

func TestSizeSymlinkContributesZero(t *testing.T) {
	root := t.TempDir()
	mkFile(t, filepath.Join(root, "real.bin"), 4096)
	dir := filepath.Join(root, "build")
	mkFile(t, filepath.Join(dir, "out.bin"), 100)
	require.NoError(t, os.Symlink(filepath.Join(root, "real.bin"), filepath.Join(dir, "link.bin")))

	s := NewSizer(4, testLogger())
	// The link target's 4096 bytes must not be counted.
	assert.Equal(t, int64(100), s.Size(dir))

	// A symlink given directly also sizes to zero; it is never followed.
	assert.Equal(t, int64(0), s.Size(filepath.Join(dir, "link.bin")))
}

func TestSizeMissingPathWarnsAndReturnsZero(t *testing.T) {
	log := logger.New(io.Discard, io.Discard, false)
	s := NewSizer(4, log)

	got := s.Size(filepath.Join(t.TempDir(), "gone"))

	assert.Equal(t, int64(0), got)
	assert.Equal(t, 1, log.WarnCount())
}

func TestSizeDanglingSymlinkInsideDirectory(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "cache")
	mkFile(t, filepath.Join(dir, "data"), 50)
	require.NoError(t, os.Symlink(filepath.Join(root, "nope"), filepath.Join(dir, "dangling")))

	s := NewSizer(4, testLogger())
	// Dangling link contributes 0 and does not abort the sibling sum.
	assert.Equal(t, int64(50), s.Size(dir))
}

func TestSizeUnreadableChildContributesZero(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	root := t.TempDir()
	dir := filepath.Join(root, "build")
	mkFile(t, filepath.Join(dir, "readable.bin"), 300)
	locked := filepath.Join(dir, "locked")
	mkFile(t, filepath.Join(locked, "hidden.bin"), 7000)
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	log := logger.New(io.Discard, io.Discard, false)
	s := NewSizer(4, log)

	// The unreadable subdirectory contributes 0 with a warning; the sibling
	// sum still comes back and the run completes.
	assert.Equal(t, int64(300), s.Size(dir))
	assert.Equal(t, 1, log.WarnCount())
}

func TestSizeWideTreeConcurrency(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "coverage")
	var want int64
	for i := 0; i < 20; i++ {
		sub := filepath.Join(dir, string(rune('a'+i)))
		mkFile(t, filepath.Join(sub, "report"), 10+i)
		want += int64(10 + i)
	}

	s := NewSizer(2, testLogger())
	assert.Equal(t, want, s.Size(dir))
}
