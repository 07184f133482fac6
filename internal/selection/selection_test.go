package selection

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bundlepick/bundlepick/internal/ignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkfile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))
}

func TestSet_AddRemoveContains(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.Len())

	s.Add("/p/a.txt")
	s.Add("/p/a.txt") // duplicate add is a no-op
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains("/p/a.txt"))

	s.Remove("/p/missing.txt") // absent remove is a no-op
	assert.Equal(t, 1, s.Len())

	s.Remove("/p/a.txt")
	assert.False(t, s.Contains("/p/a.txt"))
}

func TestSet_DoubleToggleRestoresMembership(t *testing.T) {
	s := New()
	s.Add("/p/kept.txt")

	assert.True(t, s.Toggle("/p/a.txt"))
	assert.False(t, s.Toggle("/p/a.txt"))
	assert.False(t, s.Contains("/p/a.txt"))

	assert.False(t, s.Toggle("/p/kept.txt"))
	assert.True(t, s.Toggle("/p/kept.txt"))
	assert.True(t, s.Contains("/p/kept.txt"))
	assert.Equal(t, 1, s.Len())
}

func TestSet_PathsSortedSnapshot(t *testing.T) {
	s := New()
	s.Add("/p/c.txt")
	s.Add("/p/a.txt")
	s.Add("/p/b.txt")

	assert.Equal(t, []string{"/p/a.txt", "/p/b.txt", "/p/c.txt"}, s.Paths())
}

func TestSet_ReplaceDeduplicates(t *testing.T) {
	s := New()
	s.Add("/old/x.txt")

	s.Replace([]string{"/n/a.txt", "/n/b.txt", "/n/a.txt", "", "  "})
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("/n/a.txt"))
	assert.True(t, s.Contains("/n/b.txt"))
	assert.False(t, s.Contains("/old/x.txt"))
}

func TestSet_AnyUnder(t *testing.T) {
	s := New()
	s.Add("/root/src/a.go")

	assert.True(t, s.AnyUnder("/root/src"))
	assert.True(t, s.AnyUnder("/root"))
	assert.False(t, s.AnyUnder("/root/srcs"))
	assert.False(t, s.AnyUnder("/root/docs"))
}

func TestMarkSubtree_MarkThenUnmarkIsClean(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	mkfile(t, filepath.Join(src, "a.go"))
	mkfile(t, filepath.Join(src, "b.go"))
	mkfile(t, filepath.Join(src, "nested", "c.go"))

	m := ignore.New(root, nil)
	s := New()

	require.NoError(t, s.MarkSubtree(src, true, m))
	assert.Equal(t, 3, s.Len())

	require.NoError(t, s.MarkSubtree(src, false, m))
	assert.Equal(t, 0, s.Len())
}

func TestMarkSubtree_SkipsIgnoredFiles(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	mkfile(t, filepath.Join(src, "a.go"))
	mkfile(t, filepath.Join(src, "debug.log"))

	m := ignore.New(root, []string{"*.log"})
	s := New()

	require.NoError(t, s.MarkSubtree(src, true, m))
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(filepath.Join(src, "a.go")))
}

func TestMarkSubtree_IgnoredDirectorySubtreeIsUnreachable(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	mkfile(t, filepath.Join(src, "a.go"))
	hidden := filepath.Join(src, "vendor", "pkg.go")
	mkfile(t, hidden)

	m := ignore.New(root, []string{"vendor/"})
	s := New()

	// A manually selected file inside an ignored directory survives a
	// recursive unmark of its ancestor: recursion never enters the ignored
	// directory.
	s.Add(hidden)
	require.NoError(t, s.MarkSubtree(src, false, m))
	assert.True(t, s.Contains(hidden))

	// And a recursive mark never reaches it either.
	s2 := New()
	require.NoError(t, s2.MarkSubtree(src, true, m))
	assert.True(t, s2.Contains(filepath.Join(src, "a.go")))
	assert.False(t, s2.Contains(hidden))
	assert.Equal(t, 1, s2.Len())
}

func TestMarkSubtree_UnreadableDirectoryPropagates(t *testing.T) {
	root := t.TempDir()
	s := New()
	err := s.MarkSubtree(filepath.Join(root, "missing"), true, ignore.New(root, nil))
	require.Error(t, err)
}
