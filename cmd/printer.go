package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

func init() {
	// Users can disable color with NO_COLOR.
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
}

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// success prints a message in green with a checkmark prefix.
func success(w io.Writer, format string, a ...any) {
	green.Fprintf(w, "✓ %s\n", fmt.Sprintf(format, a...))
}

// warning prints a message in yellow.
func warning(w io.Writer, format string, a ...any) {
	yellow.Fprintf(w, "! %s\n", fmt.Sprintf(format, a...))
}

// failure prints a title in red followed by an explanation.
func failure(w io.Writer, title, explanation string) {
	red.Fprintf(w, "✗ %s\n", title)
	if explanation != "" {
		fmt.Fprintf(w, "  %s\n", explanation)
	}
}

// heading prints a section title in cyan.
func heading(w io.Writer, format string, a ...any) {
	cyan.Fprintf(w, "%s\n", fmt.Sprintf(format, a...))
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
