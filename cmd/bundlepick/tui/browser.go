// Package tui implements the interactive file picker.
package tui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bundlepick/bundlepick/internal/bundler"
	"github.com/bundlepick/bundlepick/internal/config"
	"github.com/bundlepick/bundlepick/internal/ignore"
	"github.com/bundlepick/bundlepick/internal/listing"
	"github.com/bundlepick/bundlepick/internal/logging"
	"github.com/bundlepick/bundlepick/internal/pager"
	"github.com/bundlepick/bundlepick/internal/ranger"
	"github.com/bundlepick/bundlepick/internal/selection"
	"github.com/bundlepick/bundlepick/internal/stats"
	"github.com/bundlepick/bundlepick/internal/tools"
)

const statusFlashDuration = 3 * time.Second

// Options carries everything the session needs, resolved once at startup.
type Options struct {
	Root    string
	Config  config.Config
	Caps    tools.Capabilities
	Matcher *ignore.Matcher
	Counter stats.Counter
}

// Model is the root bubbletea model: the navigation state machine owning the
// current directory, the entry list, the selection set, and all child
// components. Every state transition happens in Update, in response to one
// input event at a time.
type Model struct {
	root    string
	cwd     string
	matcher *ignore.Matcher
	sel     *selection.Set
	agg     *stats.Aggregator
	inv     *bundler.Invoker
	bridge  ranger.Bridge
	caps    tools.Capabilities
	cfg     config.Config

	mode    sessionMode
	list    List
	preview Preview
	prompt  Prompt
	status  StatusBar

	width, height int
	ready         bool
	flashSeq      int

	// Read by the caller after the program exits.
	fatalErr error
	exitMsg  string
}

// NewModel builds the session model and performs the initial listing of the
// working root. An unreadable root is a startup failure, reported before any
// UI is drawn.
func NewModel(opts Options) (Model, error) {
	m := Model{
		root:    opts.Root,
		cwd:     opts.Root,
		matcher: opts.Matcher,
		sel:     selection.New(),
		agg:     stats.NewAggregator(opts.Counter),
		inv:     bundler.New(toInvokerConfig(opts.Config.Bundler), opts.Root),
		bridge:  ranger.Bridge{Command: opts.Config.Ranger},
		caps:    opts.Caps,
		cfg:     opts.Config,
		preview: NewPreview(),
		status:  NewStatusBar(opts.Counter.Name()),
	}

	entries, err := listing.List(m.root, m.matcher, m.sel)
	if err != nil {
		return Model{}, err
	}
	m.list.SetEntries(entries)
	return m, nil
}

func toInvokerConfig(b config.Bundler) bundler.Config {
	return bundler.Config{
		Command:       b.Command,
		IncludeFlag:   b.IncludeFlag,
		Delimiter:     b.Delimiter,
		ClipboardFlag: b.ClipboardFlag,
		PromptFlag:    b.PromptFlag,
		ExtraArgs:     b.ExtraArgs,
	}
}

// ExitMessage returns text to print after the program exits, if any.
func (m Model) ExitMessage() string {
	return m.exitMsg
}

// Err returns the fatal error recorded before exit, if any.
func (m Model) Err() error {
	return m.fatalErr
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model. All mutation of the selection set and stats
// cache happens here, on the single control thread.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.list.SetSize(msg.Width, m.listHeight())
		m.preview.SetSize(msg.Width, msg.Height)
		m.prompt.SetWidth(msg.Width)
		m.status.SetWidth(msg.Width)
		return m, nil

	case statusExpireMsg:
		if msg.id == m.flashSeq {
			m.status.ClearFlash()
		}
		return m, nil

	case promptCloseMsg:
		return m.handlePromptClose(msg)

	case bundlerDoneMsg:
		if msg.err != nil {
			m.fatalErr = fmt.Errorf("%w: %v", bundler.ErrBundlerFailed, msg.err)
		}
		m.mode = modeQuitting
		return m, tea.Quit

	case rangerDoneMsg:
		return m.handleRangerDone(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch m.mode {
		case modePrompt:
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(key)
			return m, cmd
		case modePreview:
			return m.updatePreview(key)
		case modeBrowsing:
			return m.updateBrowsing(key)
		}
	}

	return m, nil
}

// --- Browsing state ---

func (m Model) updateBrowsing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "ctrl+c":
		m.mode = modeQuitting
		return m, tea.Quit

	case "j", "down":
		m.list.MoveBy(1)
	case "k", "up":
		m.list.MoveBy(-1)
	case "g", "home":
		m.list.MoveToStart()
	case "G", "end":
		m.list.MoveToEnd()
	case "pgdown", "ctrl+d":
		m.list.PageBy(1)
	case "pgup", "ctrl+u":
		m.list.PageBy(-1)

	case " ":
		return m.toggleCurrent()

	case "enter", "l", "right":
		if entry, ok := m.list.Current(); ok {
			if entry.IsDir {
				return m.descend(entry.Path)
			}
			return m.openPreview(entry)
		}

	case "v":
		if entry, ok := m.list.Current(); ok && !entry.IsDir {
			return m.openPreview(entry)
		}

	case "h", "left", "backspace":
		return m.ascend()

	case "f":
		return m.runDirect()

	case "c":
		return m.runToClipboard()

	case "p":
		m.prompt = NewPrompt()
		m.prompt.SetWidth(m.width)
		m.mode = modePrompt

	case "r":
		return m.launchRanger()

	case "?":
		m.preview.Show("Help", helpText())
		m.mode = modePreview
	}

	return m, nil
}

func (m Model) updatePreview(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "q", "v":
		m.mode = modeBrowsing
		return m, nil
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(key)
	return m, cmd
}

// --- Selection ---

func (m Model) toggleCurrent() (tea.Model, tea.Cmd) {
	entry, ok := m.list.Current()
	if !ok {
		return m, nil
	}
	if entry.Ignored {
		return m.withFlash(fmt.Sprintf("%s is excluded by the ignore file", entry.Name))
	}

	if entry.IsDir {
		// Directories toggle their whole subtree: unmark when anything under
		// them is already selected, mark otherwise.
		mark := !m.sel.AnyUnder(entry.Path)
		if err := m.sel.MarkSubtree(entry.Path, mark, m.matcher); err != nil {
			logging.L.WithError(err).Debug("subtree mark aborted")
			m.refresh()
			return m.withFlash("could not read part of " + entry.Name)
		}
	} else {
		m.sel.Toggle(entry.Path)
	}

	m.refresh()
	return m, nil
}

// refresh re-projects the current directory (selected flags are derived) and
// recomputes aggregate stats. Stats run after every file-level mutation; the
// per-file cache keeps this cheap.
func (m *Model) refresh() {
	if entries, err := listing.List(m.cwd, m.matcher, m.sel); err == nil {
		m.list.RefreshEntries(entries)
	}
	m.status.SetStats(m.agg.Update(m.sel.Paths()), m.sel.Len())
}

// --- Navigation ---

func (m Model) descend(dir string) (tea.Model, tea.Cmd) {
	entries, err := listing.List(dir, m.matcher, m.sel)
	if err != nil {
		// Refused transition: directory, list, and cursor stay intact.
		logging.L.WithError(err).Debug("descend refused")
		return m.withFlash("cannot open " + filepath.Base(dir))
	}
	m.cwd = dir
	m.list.SetEntries(entries)
	return m, nil
}

func (m Model) ascend() (tea.Model, tea.Cmd) {
	parent := filepath.Dir(m.cwd)
	if parent == m.cwd {
		return m, nil // filesystem root
	}
	entries, err := listing.List(parent, m.matcher, m.sel)
	if err != nil {
		logging.L.WithError(err).Debug("ascend refused")
		return m.withFlash("cannot open parent directory")
	}
	m.cwd = parent
	m.list.SetEntries(entries)
	return m, nil
}

// --- Preview ---

func (m Model) openPreview(entry listing.Entry) (tea.Model, tea.Cmd) {
	content := pager.Render(m.caps.PagerPath, entry.Path, m.width)
	m.preview.Show(entry.Name, content)
	m.mode = modePreview
	return m, nil
}

// --- Bundler runs ---

func (m Model) runDirect() (tea.Model, tea.Cmd) {
	if m.sel.Len() == 0 {
		// No-op terminal condition, not an error: report and exit cleanly
		// without spawning anything.
		m.exitMsg = "no files selected"
		m.mode = modeQuitting
		return m, tea.Quit
	}
	cmd, err := m.inv.DirectCommand(m.sel.Paths())
	if err != nil {
		return m.withFlash(err.Error())
	}
	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return bundlerDoneMsg{err: err}
	})
}

func (m Model) runToClipboard() (tea.Model, tea.Cmd) {
	if m.sel.Len() == 0 {
		return m.withFlash("no files selected")
	}
	// Blocks the loop until the bundler exits; no other suspension point can
	// run concurrently.
	if err := m.inv.RunToClipboard(m.sel.Paths()); err != nil {
		return m.withFlash(err.Error())
	}
	return m.withFlash("bundle copied to clipboard")
}

func (m Model) handlePromptClose(msg promptCloseMsg) (tea.Model, tea.Cmd) {
	m.mode = modeBrowsing
	if !msg.Confirmed || msg.Text == "" {
		return m, nil
	}
	if m.sel.Len() == 0 {
		return m.withFlash("no files selected")
	}
	out, err := m.inv.RunWithPrompt(m.sel.Paths(), msg.Text)
	if err != nil {
		return m.withFlash(err.Error())
	}
	m.preview.Show("Bundle output", out)
	m.mode = modePreview
	return m, nil
}

// --- Alternate selector ---

func (m Model) launchRanger() (tea.Model, tea.Cmd) {
	if !m.caps.HasRanger() {
		return m.withFlash("alternate selector not installed")
	}
	session, err := m.bridge.Prepare(m.root)
	if err != nil {
		return m.withFlash(err.Error())
	}
	return m, tea.ExecProcess(session.Cmd, func(err error) tea.Msg {
		return rangerDoneMsg{session: session, err: err}
	})
}

func (m Model) handleRangerDone(msg rangerDoneMsg) (tea.Model, tea.Cmd) {
	paths := msg.session.Harvest()
	msg.session.Cleanup()

	if len(paths) > 0 {
		m.sel.Replace(paths)
	}
	m.refresh()

	if msg.err != nil {
		return m.withFlash("alternate selector exited with an error")
	}
	if len(paths) == 0 {
		return m.withFlash("no paths marked, selection unchanged")
	}
	return m.withFlash(fmt.Sprintf("selection replaced with %d marked paths", len(paths)))
}

// --- Status flash ---

// withFlash shows a transient message that auto-expires. The sequence id
// keeps an old timer from clearing a newer message.
func (m Model) withFlash(text string) (tea.Model, tea.Cmd) {
	m.status.Flash(text)
	m.flashSeq++
	id := m.flashSeq
	return m, tea.Tick(statusFlashDuration, func(time.Time) tea.Msg {
		return statusExpireMsg{id: id}
	})
}

// --- View ---

func (m Model) listHeight() int {
	h := m.height - 2 // title + status bar
	if h < 1 {
		h = 1
	}
	return h
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.mode == modeQuitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	if m.mode == modePreview {
		return m.preview.View()
	}

	title := TitleStyle.Render("bundlepick") + " " + TitlePathStyle.Render(m.displayPath())
	status := m.status.View()

	var body string
	if m.mode == modePrompt {
		body = lipgloss.Place(m.width, m.listHeight(), lipgloss.Center, lipgloss.Center, m.prompt.View())
	} else {
		body = lipgloss.NewStyle().Height(m.listHeight()).Render(m.list.View())
	}

	return title + "\n" + body + "\n" + status
}

// displayPath shows the current directory relative to the working root.
func (m Model) displayPath() string {
	if m.cwd == m.root {
		return m.root
	}
	rel, err := filepath.Rel(m.root, m.cwd)
	if err != nil {
		return m.cwd
	}
	return filepath.Join(filepath.Base(m.root), rel)
}

func helpText() string {
	return `Navigation
  j / down        move down
  k / up          move up
  g / home        jump to top
  G / end         jump to bottom
  pgdn / ctrl+d   page down
  pgup / ctrl+u   page up
  enter / l       enter directory, or preview file
  h / backspace   parent directory

Selection
  space           toggle file, or whole directory subtree
  r               build selection in the alternate file manager

Bundling
  f               run the bundler in the terminal
  c               run the bundler, copy output to clipboard
  p               run the bundler with a free-text prompt

Other
  v               preview file
  ?               this help
  q               quit`
}

// Ensure Model satisfies tea.Model at compile time.
var _ tea.Model = Model{}
