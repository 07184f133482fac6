package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Preview is the full-screen scrollable surface used for file previews,
// prompt-run output, and the help screen.
type Preview struct {
	title string
	vp    viewport.Model
}

// NewPreview creates an empty preview surface.
func NewPreview() Preview {
	return Preview{vp: viewport.New(0, 0)}
}

// SetSize sets the preview dimensions, reserving the title and hint rows.
func (p *Preview) SetSize(width, height int) {
	p.vp.Width = width
	p.vp.Height = height - 2
	if p.vp.Height < 1 {
		p.vp.Height = 1
	}
}

// Show loads new content and scrolls back to the top.
func (p *Preview) Show(title, content string) {
	p.title = title
	p.vp.SetContent(content)
	p.vp.GotoTop()
}

// Update routes scroll keys to the viewport.
func (p Preview) Update(msg tea.Msg) (Preview, tea.Cmd) {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd
}

// View renders the preview with its title and dismiss hint.
func (p Preview) View() string {
	title := PreviewTitleStyle.Render(p.title)
	hint := PreviewHintStyle.Render("esc/q: back · j/k: scroll")
	return title + "\n" + p.vp.View() + "\n" + hint
}
