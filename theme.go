package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rshep3087/finview/budget"
	"github.com/Rshep3087/finview/config"
	"github.com/Rshep3087/finview/live"
)

// Theme contains all the colors used throughout the application.
type Theme struct {
	Primary       lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Muted         lipgloss.Color
	Income        lipgloss.Color
	Expense       lipgloss.Color
	Border        lipgloss.Color
	Background    lipgloss.Color
	Text          lipgloss.Color
	SecondaryText lipgloss.Color
}

// newTheme creates a Theme from config.Colors.
func newTheme(colors config.Colors) Theme {
	return Theme{
		Primary:       parseColor(colors.Primary, "#ffd644"),
		Error:         parseColor(colors.Error, "#ff0000"),
		Success:       parseColor(colors.Success, "#22ba46"),
		Warning:       parseColor(colors.Warning, "#e0a251"),
		Muted:         parseColor(colors.Muted, "#7f7d78"),
		Income:        parseColor(colors.Income, "#00ff00"),
		Expense:       parseColor(colors.Expense, "#ff0000"),
		Border:        parseColor(colors.Border, "#7D56F4"),
		Background:    parseColor(colors.Background, "#7D56F4"),
		Text:          parseColor(colors.Text, "#FAFAFA"),
		SecondaryText: parseColor(colors.SecondaryText, "#888888"),
	}
}

// parseColor returns colorStr as a lipgloss.Color, or defaultColor when it
// is empty. Hex and ANSI codes are both accepted as-is.
func parseColor(colorStr, defaultColor string) lipgloss.Color {
	if colorStr == "" {
		return lipgloss.Color(defaultColor)
	}
	return lipgloss.Color(colorStr)
}

func (t Theme) liveColors() live.Colors {
	return live.Colors{
		Primary: string(t.Primary),
		Gain:    string(t.Income),
		Loss:    string(t.Expense),
		Warning: string(t.Warning),
	}
}

func (t Theme) budgetColors() budget.Colors {
	return budget.Colors{
		Primary: string(t.Primary),
		Income:  string(t.Income),
		Expense: string(t.Expense),
	}
}
