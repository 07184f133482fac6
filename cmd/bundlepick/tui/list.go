package tui

import (
	"strings"

	"github.com/bundlepick/bundlepick/internal/listing"
)

// List is the scrollable directory listing. It owns the logical cursor index
// and the scroll offset of the bounded-height viewport.
type List struct {
	entries []listing.Entry
	cursor  int
	offset  int
	height  int // viewport height (number of visible rows)
	width   int
}

// SetEntries replaces the entries after a directory change, resetting cursor
// and scroll to the top.
func (l *List) SetEntries(entries []listing.Entry) {
	l.entries = entries
	l.cursor = 0
	l.offset = 0
	l.recomputeScroll()
}

// RefreshEntries replaces the entries for the same directory (selection flags
// are a read-through projection and go stale on every mutation), keeping the
// cursor position clamped to the new length.
func (l *List) RefreshEntries(entries []listing.Entry) {
	l.entries = entries
	l.clampCursor()
	l.recomputeScroll()
}

// SetSize sets the viewport dimensions.
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.recomputeScroll()
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Current returns the entry under the cursor.
func (l *List) Current() (listing.Entry, bool) {
	if len(l.entries) == 0 {
		return listing.Entry{}, false
	}
	return l.entries[l.cursor], true
}

// Cursor returns the logical cursor index.
func (l *List) Cursor() int {
	return l.cursor
}

// Offset returns the scroll offset.
func (l *List) Offset() int {
	return l.offset
}

// MoveBy moves the cursor by delta, clamped to the list bounds. No-op on an
// empty list.
func (l *List) MoveBy(delta int) {
	l.cursor += delta
	l.clampCursor()
	l.recomputeScroll()
}

// MoveToStart jumps to the first entry.
func (l *List) MoveToStart() {
	l.cursor = 0
	l.recomputeScroll()
}

// MoveToEnd jumps to the last entry.
func (l *List) MoveToEnd() {
	l.cursor = len(l.entries) - 1
	l.clampCursor()
	l.recomputeScroll()
}

// PageBy moves one viewport height in the given direction (+1 down, -1 up).
func (l *List) PageBy(direction int) {
	page := l.height
	if page < 1 {
		page = 1
	}
	l.MoveBy(direction * page)
}

func (l *List) clampCursor() {
	if l.cursor >= len(l.entries) {
		l.cursor = len(l.entries) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// recomputeScroll restores the viewport invariant
// offset <= cursor <= offset+height-1. It runs after every cursor-changing
// operation and on resize, so a violated state is never rendered.
func (l *List) recomputeScroll() {
	if l.height <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	} else if l.cursor >= l.offset+l.height {
		l.offset = l.cursor - l.height + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the visible window of the listing.
func (l List) View() string {
	if len(l.entries) == 0 {
		return IgnoredStyle.Render("  (empty directory)")
	}

	var b strings.Builder
	end := l.offset + l.height
	if end > len(l.entries) {
		end = len(l.entries)
	}

	for i := l.offset; i < end; i++ {
		e := l.entries[i]

		cursor := "  "
		if i == l.cursor {
			cursor = "> "
		}

		mark := "[ ] "
		switch {
		case e.IsDir:
			mark = "    "
		case e.Selected:
			mark = SelectedMarkStyle.Render("[x]") + " "
		}

		name := e.Name
		if e.IsDir {
			name += "/"
		}
		switch {
		case e.Ignored:
			name = IgnoredStyle.Render(name)
		case i == l.cursor:
			name = CursorLineStyle.Render(name)
		case e.IsDir:
			name = DirStyle.Render(name)
		default:
			name = FileStyle.Render(name)
		}

		b.WriteString(cursor + mark + name + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
