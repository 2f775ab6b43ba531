package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// PresetModel lets users choose the board preset for 2048.
type PresetModel struct {
	presets   []t2048.Preset
	boardSize int // Configured size for the classic preset
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	help      help.Model
	selected  *t2048.Preset
	quitting  bool
}

// NewPresetModel creates a new preset selection model with the cursor on
// the classic board.
func NewPresetModel(width, height, boardSize int) PresetModel {
	m := PresetModel{
		presets:   t2048.Presets,
		boardSize: boardSize,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
	for i, p := range m.presets {
		if p.ID == "2048" {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m PresetModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m PresetModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.presets)-1)
	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.presets)-1)
	case MenuActionSelect:
		p := m.presets[m.cursor]
		m.selected = &p
		return m, tea.Quit
	}

	return m, nil
}

// View renders the preset list.
func (m PresetModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select board:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		line := "  " + p.Label(m.boardSize)
		if i == m.cursor {
			line = selectedStyle.Render("> " + p.Label(m.boardSize))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(menuKeyMap(m.keyMapper.Keys())), m.width))

	return b.String()
}

// Selected returns the chosen preset, or nil if none was chosen.
func (m PresetModel) Selected() *t2048.Preset {
	return m.selected
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunPresetPicker runs the preset selection. It returns nil if the user
// quit without choosing.
func RunPresetPicker(cfg core.RuntimeConfig) (*t2048.Preset, error) {
	model := NewPresetModel(cfg.ScreenW, cfg.ScreenH, cfg.BoardSize)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("preset picker: %w", err)
	}

	m, ok := finalModel.(PresetModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
