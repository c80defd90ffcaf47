package style

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// UseColor reports whether styled output should be emitted on the given
// file. Respects NO_COLOR, pipes/redirection, and terminals without
// color support.
func UseColor(output *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}

// Render applies the named style to text when color is enabled on
// stdout, otherwise returns the text unchanged
func Render(name, text string) string {
	if !UseColor(os.Stdout) {
		return text
	}
	return GetStyle(name).Render(text)
}
