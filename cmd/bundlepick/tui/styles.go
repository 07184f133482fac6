package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Title bar styles.
var (
	// TitleStyle renders the top line with the app name and current directory.
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue).
			Padding(0, 1).
			Bold(true)

	// TitlePathStyle renders the working-directory portion of the title.
	TitlePathStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)
)

// List styles.
var (
	// DirStyle is used for directory entries.
	DirStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// FileStyle is used for regular file entries.
	FileStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// IgnoredStyle dims entries excluded by the ignore file.
	IgnoredStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// SelectedMarkStyle colors the checked selection marker.
	SelectedMarkStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	// CursorLineStyle highlights the row under the cursor.
	CursorLineStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)

	// StatusFlashStyle renders transient status messages.
	StatusFlashStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Background(colorSurface0).
				Bold(true)
)

// Prompt overlay styles.
var (
	// PromptBoxStyle is the border and background for the prompt input modal.
	PromptBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Padding(1, 2)

	// PromptTitleStyle is used for the prompt modal title.
	PromptTitleStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)
)

// Preview styles.
var (
	// PreviewTitleStyle renders the preview header line.
	PreviewTitleStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorGreen).
				Padding(0, 1).
				Bold(true)

	// PreviewHintStyle renders the dismiss hint under the preview.
	PreviewHintStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0)
)
