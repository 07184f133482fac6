package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bundlepick/bundlepick/internal/listing"
)

func makeEntries(n int) []listing.Entry {
	entries := make([]listing.Entry, n)
	for i := range entries {
		entries[i] = listing.Entry{
			Name: fmt.Sprintf("file%02d.txt", i),
			Path: fmt.Sprintf("/tmp/file%02d.txt", i),
		}
	}
	return entries
}

func assertScrollInvariant(t *testing.T, l *List) {
	t.Helper()
	assert.LessOrEqual(t, l.Offset(), l.Cursor(), "cursor above viewport")
	assert.LessOrEqual(t, l.Cursor(), l.Offset()+4, "cursor below viewport")
}

func TestListMoveClampsToBounds(t *testing.T) {
	var l List
	l.SetSize(80, 5)
	l.SetEntries(makeEntries(3))

	l.MoveBy(-10)
	assert.Equal(t, 0, l.Cursor())

	l.MoveBy(10)
	assert.Equal(t, 2, l.Cursor())
}

func TestListEmptyIsSafe(t *testing.T) {
	var l List
	l.SetSize(80, 5)
	l.SetEntries(nil)

	l.MoveBy(1)
	l.MoveToEnd()
	l.PageBy(1)

	assert.Equal(t, 0, l.Cursor())
	_, ok := l.Current()
	assert.False(t, ok)
}

func TestListScrollFollowsCursor(t *testing.T) {
	var l List
	l.SetSize(80, 5)
	l.SetEntries(makeEntries(20))

	for i := 0; i < 12; i++ {
		l.MoveBy(1)
		assertScrollInvariant(t, &l)
	}
	assert.Equal(t, 12, l.Cursor())
	assert.Equal(t, 8, l.Offset())

	for i := 0; i < 12; i++ {
		l.MoveBy(-1)
		assertScrollInvariant(t, &l)
	}
	assert.Equal(t, 0, l.Cursor())
	assert.Equal(t, 0, l.Offset())
}

func TestListJumpAndPage(t *testing.T) {
	var l List
	l.SetSize(80, 5)
	l.SetEntries(makeEntries(20))

	l.MoveToEnd()
	assert.Equal(t, 19, l.Cursor())
	assertScrollInvariant(t, &l)

	l.MoveToStart()
	assert.Equal(t, 0, l.Cursor())
	assert.Equal(t, 0, l.Offset())

	l.PageBy(1)
	assert.Equal(t, 5, l.Cursor())
	assertScrollInvariant(t, &l)

	l.PageBy(-1)
	assert.Equal(t, 0, l.Cursor())
	assertScrollInvariant(t, &l)
}

func TestListResizeRestoresInvariant(t *testing.T) {
	var l List
	l.SetSize(80, 10)
	l.SetEntries(makeEntries(20))
	l.MoveBy(9)

	l.SetSize(80, 5)
	assert.LessOrEqual(t, l.Offset(), l.Cursor())
	assert.LessOrEqual(t, l.Cursor(), l.Offset()+4)
}

func TestListRefreshKeepsCursor(t *testing.T) {
	var l List
	l.SetSize(80, 5)
	l.SetEntries(makeEntries(10))
	l.MoveBy(7)

	l.RefreshEntries(makeEntries(10))
	assert.Equal(t, 7, l.Cursor())

	// Shrinking listing clamps the cursor.
	l.RefreshEntries(makeEntries(3))
	assert.Equal(t, 2, l.Cursor())
}

func TestListSetEntriesResetsPosition(t *testing.T) {
	var l List
	l.SetSize(80, 5)
	l.SetEntries(makeEntries(20))
	l.MoveToEnd()

	l.SetEntries(makeEntries(8))
	assert.Equal(t, 0, l.Cursor())
	assert.Equal(t, 0, l.Offset())
}
