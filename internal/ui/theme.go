package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/shoplist/internal/model"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Price                         lipgloss.Style
	BoxUnchecked, BoxChecked                      string
	Border                                        lipgloss.Border
	BorderColor                                   lipgloss.Color
	SymDone, SymPending                           string
	Categories                                    map[model.Category]lipgloss.Style
}

var current = classic()

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
			Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),

			Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
			Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Price:    lipgloss.NewStyle().Foreground(lipgloss.Color("46")),

			BoxUnchecked: "◻", BoxChecked: "◼",
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("51"),
			SymDone:     "✔", SymPending: "•",
			Categories: categoryStyles(),
		}
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain, Pending: plain,
			Selected: plain, Done: plain, Price: plain,
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			Border:  lipgloss.NormalBorder(),
			SymDone: "x", SymPending: "-",
			Categories: map[model.Category]lipgloss.Style{},
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Price:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")),

		BoxUnchecked: "☐", BoxChecked: "☑",
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		SymDone:     "✔", SymPending: "•",
		Categories: categoryStyles(),
	}
}

func categoryStyles() map[model.Category]lipgloss.Style {
	return map[model.Category]lipgloss.Style{
		model.Groceries:   lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
		model.Household:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		model.Electronics: lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		model.Clothing:    lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
		model.Other:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Current returns the active theme.
func Current() Theme { return current }

// Badge renders a category label in its colour.
func Badge(c model.Category) string {
	st, ok := current.Categories[c]
	if !ok {
		return "[" + c.Label() + "]"
	}
	return C(st, "["+c.Label()+"]")
}
