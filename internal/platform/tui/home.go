package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkoval/vgacons/internal/feed"
)

// HomeChoice identifies what the user picked on the home screen.
type HomeChoice int

const (
	ChoiceQuit HomeChoice = iota
	ChoiceDemo
	ChoiceSnapshots
)

// HomeItem represents a selectable entry in the home menu.
type HomeItem struct {
	Choice HomeChoice
	FeedID string // set for ChoiceDemo
	Title  string
}

// HomeModel is the Bubble Tea model for the top-level menu.
type HomeModel struct {
	items    []HomeItem
	cursor   int
	width    int
	height   int
	quitting bool
	selected *HomeItem // Set when user selects an entry
}

// NewHomeModel creates a new home menu model. The demo entries come from
// the feed registry.
func NewHomeModel(width, height int) HomeModel {
	sources := feed.List()
	items := make([]HomeItem, 0, len(sources)+2)

	for _, s := range sources {
		items = append(items, HomeItem{
			Choice: ChoiceDemo,
			FeedID: s.ID,
			Title:  fmt.Sprintf("Watch: %s", s.Title),
		})
	}
	items = append(items, HomeItem{Choice: ChoiceSnapshots, Title: "Snapshots"})
	items = append(items, HomeItem{Choice: ChoiceQuit, Title: "Quit"})

	return HomeModel{
		items:  items,
		cursor: 0,
		width:  width,
		height: height,
	}
}

// Init initializes the home model.
func (m HomeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the home menu.
func (m HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m HomeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case "enter", " ":
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the home menu.
func (m HomeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	title := "  V G A C O N S  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	// Subtitle
	subtitle := "Text-mode display monitor"
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	// Entries
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := cursor + item.Title
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected entry, or nil if none selected.
func (m HomeModel) Selected() *HomeItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m HomeModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// HomeResult holds the result of running the home menu.
type HomeResult struct {
	Choice HomeChoice
	FeedID string
}

// RunHome runs the home menu and returns the selection result.
func RunHome(width, height int) (HomeResult, error) {
	model := NewHomeModel(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return HomeResult{Choice: ChoiceQuit}, err
	}

	m, ok := finalModel.(HomeModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return HomeResult{Choice: ChoiceQuit}, nil
	}

	return HomeResult{
		Choice: m.Selected().Choice,
		FeedID: m.Selected().FeedID,
	}, nil
}
