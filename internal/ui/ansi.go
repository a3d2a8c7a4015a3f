package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	symCheck = "✔"
	symCross = "✖"
	symWarn  = "!"
)

var disableColor bool

// SetColorMode applies the ui.color setting: "always" forces ANSI colours
// even when stdout is not a terminal, "never" strips all styling, "auto"
// lets lipgloss detect the terminal.
func SetColorMode(mode string) {
	switch mode {
	case "always":
		disableColor = false
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		disableColor = true
	default:
		disableColor = false
	}
}

// C renders s with style unless colour is disabled.
func C(style lipgloss.Style, s string) string {
	if disableColor {
		return s
	}
	return style.Render(s)
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, C(current.Success, symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, C(current.Error, symCross+" "+msg)) }
func Warn(w io.Writer, msg string) { fmt.Fprintln(w, C(current.Pending, symWarn+" "+msg)) }
