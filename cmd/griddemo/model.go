package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// settingsMsg carries settings reloaded from disk.
type settingsMsg struct {
	settings Settings
}

// errMsg reports a failure from outside the program loop.
type errMsg struct {
	err error
}

// model is the interactive demo. The grid is rebuilt from the settings on
// every View.
type model struct {
	settings      Settings
	selected      int
	width, height int
	err           error
}

func newModel(s Settings, width, height int) model {
	return model{settings: s, width: width, height: height}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case settingsMsg:
		m.settings = msg.settings
		m.err = nil
	case errMsg:
		m.err = msg.err
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.selected = (m.selected + rowCount - 1) % rowCount
	case "down", "j", "tab":
		m.selected = (m.selected + 1) % rowCount
	case "left", "h":
		m.settings = m.settings.adjust(m.selected, -1)
	case "right", "l", " ", "enter":
		m.settings = m.settings.adjust(m.selected, 1)
	}
	return m, nil
}

func (m model) View() string {
	if m.err != nil {
		return "error: " + m.err.Error() + "\n"
	}
	out, err := render(m.settings, m.selected, m.width, m.height)
	if err != nil {
		return "error: " + err.Error() + "\n"
	}
	return out
}
