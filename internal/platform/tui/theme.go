package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles for the level picker.
type Theme struct {
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	Controls        lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true), // Lime green
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Controls:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// MonochromeTheme returns a theme without colors.
func MonochromeTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Bold(true),
		MenuItemNormal:  lipgloss.NewStyle(),
		MenuItemActive:  lipgloss.NewStyle().Reverse(true),
		MenuDescription: lipgloss.NewStyle().Faint(true),
		Controls:        lipgloss.NewStyle().Faint(true),
	}
}

// ThemeByName looks up a theme by its flag name.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "default":
		return DefaultTheme(), nil
	case "mono":
		return MonochromeTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (want default or mono)", name)
	}
}
