package tui

import "github.com/bundlepick/bundlepick/internal/ranger"

// sessionMode identifies the top-level state of the browser state machine.
type sessionMode int

const (
	modeBrowsing sessionMode = iota
	modePreview              // a file's content fills the screen, list keys suppressed
	modePrompt               // modal line input captures every key
	modeQuitting             // terminal state
)

// --- Inter-component messages ---

// promptCloseMsg is emitted when the prompt modal is dismissed.
type promptCloseMsg struct {
	Text      string
	Confirmed bool // true = submit, false = cancel
}

// statusExpireMsg clears a transient status message. The id guards against a
// newer flash being wiped by an older timer.
type statusExpireMsg struct{ id int }

// bundlerDoneMsg reports the outcome of a terminal-inheriting bundler run.
type bundlerDoneMsg struct{ err error }

// rangerDoneMsg reports the return from an alternate-selector excursion.
type rangerDoneMsg struct {
	session *ranger.Session
	err     error
}
