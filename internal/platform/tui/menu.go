package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

// menuChrome is the number of rows the picker uses around the level list.
const menuChrome = 10

// LevelSelection holds the user's choice from the level picker.
type LevelSelection struct {
	Level int // Index into the level list
}

// LevelMenuModel is the level picker shown before play.
type LevelMenuModel struct {
	levels       []*level.Level
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    LevelSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
	theme        Theme
}

// NewLevelMenuModel creates a level picker over levels.
func NewLevelMenuModel(levels []*level.Level, width, height int, theme Theme) LevelMenuModel {
	return LevelMenuModel{
		levels:    levels,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
		theme:     theme,
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		if len(m.levels) == 0 {
			return m, nil
		}
		m.choosing = false
		m.selection = LevelSelection{Level: m.cursor}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m LevelMenuModel) visibleItems() int {
	return max(m.height-menuChrome, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("P L A T F O R M E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("No levels found"), m.width))
		b.WriteString("\n")
	}

	end := min(m.scrollOffset+m.visibleItems(), len(m.levels))
	for i := m.scrollOffset; i < end; i++ {
		l := m.levels[i]
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		line := fmt.Sprintf("%s%2d. %-24s %3dx%-3d", cursor, i+1, l.Name, l.Width, l.Height)
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if end < len(m.levels) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.Controls.Render("Up/Down: Navigate  |  Enter: Play  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelMenuModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level picker and returns the selection, or nil
// when the user backs out.
func RunLevelSelector(levels []*level.Level, cfg core.RuntimeConfig, theme Theme) (*LevelSelection, error) {
	p := tea.NewProgram(
		NewLevelMenuModel(levels, cfg.ScreenW, cfg.ScreenH, theme),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
