// ABOUTME: Read-only playlist viewer with live file watching and scrolling
// ABOUTME: Re-reads the playlist on change and shows the transition quality summary

package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"harmonic-flow/playlist"
)

// viewModel holds the state for the read-only playlist viewer
type viewModel struct {
	playlistPath string
	tracks       []playlist.Track
	report       playlist.Report
	viewport     viewport.Model
	width        int
	height       int
	fileWatcher  *fsnotify.Watcher
	lastReload   time.Time
	errorMsg     string
	ready        bool
	cursorPos    int
}

// Key bindings for view mode
type viewKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

var viewKeys = viewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "go to top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "go to bottom"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Styles for view mode
var (
	viewTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	viewHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	viewStatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	viewHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	viewErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	viewCursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15")).
			Bold(true)
)

// fileChangeMsg is sent when the playlist file changes
type fileChangeMsg struct{}

// reloadCompleteMsg is sent after playlist reload completes
type reloadCompleteMsg struct {
	tracks []playlist.Track
	err    error
}

// RunViewMode starts the view-only mode with file watching. Useful for
// keeping a second terminal on the export while tweaking the source
// playlist: every reload recomputes the quality summary.
func RunViewMode(playlistPath string) error {
	tracks, err := LoadTracks(LoadOptions{Path: playlistPath})
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(playlistPath); err != nil {
		watcher.Close()

		return fmt.Errorf("failed to watch playlist file: %w", err)
	}

	m := viewModel{
		playlistPath: playlistPath,
		tracks:       tracks,
		report:       playlist.BuildReport(tracks),
		fileWatcher:  watcher,
		lastReload:   time.Now(),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		watcher.Close()

		return fmt.Errorf("view mode error: %w", err)
	}

	watcher.Close()

	return nil
}

// Init initializes the view model
func (m viewModel) Init() tea.Cmd {
	return tea.Batch(
		waitForFileChange(m.fileWatcher),
		tea.EnterAltScreen,
	)
}

// waitForFileChange returns a command that waits for file system events
func waitForFileChange(watcher *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				// Only react to write events
				if event.Op&fsnotify.Write == fsnotify.Write {
					// Debounce: wait a bit for atomic writes to complete
					time.Sleep(100 * time.Millisecond)

					return fileChangeMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}

				debugf("[WATCHER] Error: %v", err)
			}
		}
	}
}

// reloadPlaylist loads the playlist in the background
func reloadPlaylist(path string) tea.Cmd {
	return func() tea.Msg {
		tracks, err := LoadTracks(LoadOptions{Path: path})
		if err != nil {
			return reloadCompleteMsg{err: err}
		}

		return reloadCompleteMsg{tracks: tracks}
	}
}

// ensureCursorVisible scrolls viewport to keep cursor in view
func (m *viewModel) ensureCursorVisible() {
	viewportTop := m.viewport.YOffset
	viewportBottom := m.viewport.YOffset + m.viewport.Height - 1

	if m.cursorPos < viewportTop {
		m.viewport.SetYOffset(m.cursorPos)
	} else if m.cursorPos > viewportBottom {
		m.viewport.SetYOffset(m.cursorPos - m.viewport.Height + 1)
	}
}

// Update handles messages and updates the model
func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3 // Title + header row + separator
		footerHeight := 2 // Status + help

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.renderPlaylistContent())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}

		return m, nil

	case fileChangeMsg:
		return m, tea.Batch(
			reloadPlaylist(m.playlistPath),
			waitForFileChange(m.fileWatcher), // Continue watching
		)

	case reloadCompleteMsg:
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("Error reloading: %v", msg.err)
		} else {
			m.tracks = msg.tracks
			m.report = playlist.BuildReport(msg.tracks)
			m.lastReload = time.Now()
			m.errorMsg = ""

			if m.cursorPos >= len(m.tracks) && len(m.tracks) > 0 {
				m.cursorPos = len(m.tracks) - 1
			}

			m.viewport.SetContent(m.renderPlaylistContent())
		}

		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, viewKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, viewKeys.Up):
			if m.cursorPos > 0 {
				m.cursorPos--
				m.ensureCursorVisible()
				m.viewport.SetContent(m.renderPlaylistContent())
			}

		case key.Matches(msg, viewKeys.Down):
			if m.cursorPos < len(m.tracks)-1 {
				m.cursorPos++
				m.ensureCursorVisible()
				m.viewport.SetContent(m.renderPlaylistContent())
			}

		case key.Matches(msg, viewKeys.PageUp):
			m.cursorPos -= m.viewport.Height
			if m.cursorPos < 0 {
				m.cursorPos = 0
			}

			m.ensureCursorVisible()
			m.viewport.SetContent(m.renderPlaylistContent())

		case key.Matches(msg, viewKeys.PageDown):
			m.cursorPos += m.viewport.Height
			if m.cursorPos >= len(m.tracks) {
				m.cursorPos = len(m.tracks) - 1
			}

			if m.cursorPos < 0 {
				m.cursorPos = 0
			}

			m.ensureCursorVisible()
			m.viewport.SetContent(m.renderPlaylistContent())

		case key.Matches(msg, viewKeys.Top):
			m.cursorPos = 0
			m.viewport.GotoTop()
			m.viewport.SetContent(m.renderPlaylistContent())

		case key.Matches(msg, viewKeys.Bottom):
			if len(m.tracks) > 0 {
				m.cursorPos = len(m.tracks) - 1
			}

			m.viewport.GotoBottom()
			m.viewport.SetContent(m.renderPlaylistContent())

		case key.Matches(msg, viewKeys.Reload):
			return m, reloadPlaylist(m.playlistPath)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// View renders the view
func (m viewModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := viewTitleStyle.Render(fmt.Sprintf("Harmonic Flow: %s", m.playlistPath))

	header := viewHeaderStyle.Render(fmt.Sprintf("%-4s %-10s %-6s %-7s %-25s %-35s",
		"#", "Key", "Wheel", "BPM", "Artist", "Title"))

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s",
		title, header, m.viewport.View(), m.renderStatus(), m.renderHelp())
}

// renderPlaylistContent renders the full playlist for the viewport
func (m viewModel) renderPlaylistContent() string {
	var content string

	for i, track := range m.tracks {
		wheel := "-"
		if track.Parsed != nil {
			wheel = track.Parsed.String()
		}

		line := fmt.Sprintf("%-4d %-10s %-6s %-7s %-25s %-35s",
			i+1,
			truncate(track.Key, 10),
			wheel,
			FormatBPM(track.BPM),
			truncate(track.Artist, 25),
			truncate(track.Title, 35),
		)

		// Highlight cursor line
		if i == m.cursorPos {
			line = viewCursorStyle.Render(line)
		}

		if i < len(m.tracks)-1 {
			content += line + "\n"
		} else {
			content += line
		}
	}

	return content
}

// renderStatus renders the status bar with the transition quality summary
func (m viewModel) renderStatus() string {
	var statusText string

	if m.errorMsg != "" {
		statusText = fmt.Sprintf("%d tracks | %s",
			len(m.tracks), viewErrorStyle.Render(m.errorMsg))
	} else {
		statusText = fmt.Sprintf("%d tracks | transitions: %d (perfect %d, good %d, rough %d) | worst jump: %d | reloaded %s",
			len(m.tracks),
			m.report.Transitions,
			m.report.Perfect,
			m.report.Good,
			m.report.Bad,
			m.report.WorstJump,
			m.lastReload.Format("15:04:05"),
		)
	}

	return viewStatusStyle.Width(m.width).Render(statusText)
}

// renderHelp renders the help text
func (m viewModel) renderHelp() string {
	return viewHelpStyle.Render("↑/↓: move cursor | g/G: top/bottom | r: reload | q: quit")
}
