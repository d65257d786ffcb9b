package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pkoval/vgacons/internal/storage"
	"github.com/pkoval/vgacons/internal/vga"
)

// cursorSource is implemented by regions that track the hardware cursor.
type cursorSource interface {
	Cursor() int
}

// ViewerOptions configures the live viewer.
type ViewerOptions struct {
	Theme       string // palette name, empty means classic
	RefreshRate int    // capture rate in frames per second
	ShowCursor  bool
	Width       int // initial terminal size, updated on resize
	Height      int
}

// ViewerKeyMap defines the key bindings for the viewer.
type ViewerKeyMap struct {
	Pause  key.Binding
	Theme  key.Binding
	Cursor key.Binding
	Save   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Theme, k.Save, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Theme, k.Cursor},
		{k.Save, k.Help, k.Quit},
	}
}

// DefaultViewerKeyMap returns default key bindings.
func DefaultViewerKeyMap() ViewerKeyMap {
	return ViewerKeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Cursor: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cursor"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save snapshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ViewerModel is the Bubble Tea model showing a memory region live.
type ViewerModel struct {
	region     vga.Region
	store      *storage.Store // nil disables saving
	themes     []Theme
	themeIdx   int
	refresh    int
	frame      *vga.Frame
	cursor     int
	showCursor bool
	paused     bool
	width      int
	height     int
	keys       ViewerKeyMap
	help       help.Model
	status     string
	quitting   bool
}

// NewViewerModel creates a viewer over the given region.
func NewViewerModel(region vga.Region, store *storage.Store, opts ViewerOptions) ViewerModel {
	themes := Themes()
	themeIdx := 0
	for i, t := range themes {
		if t.Name == opts.Theme {
			themeIdx = i
			break
		}
	}

	refresh := opts.RefreshRate
	if refresh <= 0 {
		refresh = 30
	}

	h := help.New()
	h.ShowAll = false

	m := ViewerModel{
		region:     region,
		store:      store,
		themes:     themes,
		themeIdx:   themeIdx,
		refresh:    refresh,
		showCursor: opts.ShowCursor,
		width:      opts.Width,
		height:     opts.Height,
		keys:       DefaultViewerKeyMap(),
		help:       h,
	}

	m.frame = vga.CaptureFrame(region)
	m.cursor = m.readCursor()
	return m
}

func (m ViewerModel) readCursor() int {
	if cs, ok := m.region.(cursorSource); ok {
		return cs.Cursor()
	}
	return -1
}

// Init starts the capture loop.
func (m ViewerModel) Init() tea.Cmd {
	return tickCmd(m.refresh)
}

// Update handles messages for the viewer.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.paused {
			m.frame = vga.CaptureFrame(m.region)
			m.cursor = m.readCursor()
		}
		return m, tickCmd(m.refresh)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Theme):
		m.themeIdx = (m.themeIdx + 1) % len(m.themes)
		m.status = "theme: " + m.themes[m.themeIdx].Name

	case key.Matches(msg, m.keys.Cursor):
		m.showCursor = !m.showCursor

	case key.Matches(msg, m.keys.Save):
		m.saveSnapshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// saveSnapshot stores the currently displayed frame.
func (m *ViewerModel) saveSnapshot() {
	if m.store == nil {
		m.status = "no snapshot store"
		return
	}

	id, err := m.store.SaveSnapshot("viewer", m.frame)
	if err != nil {
		m.status = "save failed"
		return
	}
	m.status = fmt.Sprintf("saved snapshot %d", id)
}

// View renders the framed display with a status line and help below.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	th := m.themes[m.themeIdx]
	cursor := -1
	if m.showCursor {
		cursor = m.cursor
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	screen := borderStyle.Render(RenderFrame(m.frame, th, cursor))

	state := fmt.Sprintf("%s  %d fps", th.Name, m.refresh)
	if m.paused {
		state += "  [paused]"
	}
	if m.status != "" {
		state += "  " + m.status
	}
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		screen,
		statusStyle.Render(state),
		helpStyle.Render(m.help.View(m.keys)),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// RunViewer runs the live viewer in the local terminal.
func RunViewer(region vga.Region, store *storage.Store, opts ViewerOptions) error {
	model := NewViewerModel(region, store, opts)

	// Keyboard input comes from the tty, not stdin: stdin may be
	// carrying piped feed data for the stdin source.
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithInputTTY(),
	)

	_, err := p.Run()
	return err
}
