package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Prompt is the modal line input capturing free-text guidance for the
// bundler. While it is open, no other key handler sees input.
type Prompt struct {
	input textinput.Model
	width int
}

// NewPrompt creates the prompt modal with focus on its input.
func NewPrompt() Prompt {
	ti := textinput.New()
	ti.Placeholder = "e.g. explain the data flow between these files"
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()
	return Prompt{input: ti}
}

// SetWidth sets the modal width.
func (p *Prompt) SetWidth(w int) {
	p.width = w
}

// Update handles key messages while the prompt is open. Submit with empty
// input behaves like cancel.
func (p Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return p, func() tea.Msg {
				return promptCloseMsg{Confirmed: false}
			}
		case "enter":
			text := p.input.Value()
			return p, func() tea.Msg {
				return promptCloseMsg{Text: text, Confirmed: text != ""}
			}
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders the centered prompt box.
func (p Prompt) View() string {
	title := PromptTitleStyle.Render("Bundle with prompt")
	hint := PreviewHintStyle.Render("enter: run · esc: cancel")
	box := PromptBoxStyle.Render(title + "\n\n" + p.input.View() + "\n\n" + hint)
	if p.width > 0 {
		return lipgloss.PlaceHorizontal(p.width, lipgloss.Center, box)
	}
	return box
}
