package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// isTerminal reports whether w is a terminal that accepts colored output. NO_COLOR
// disables color regardless.
func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printSQL writes the statements to w, one per line. Output is highlighted when w
// is a terminal.
func printSQL(w io.Writer, statements []string) error {
	if len(statements) == 0 {
		return nil
	}

	sql := strings.Join(statements, "\n") + "\n"
	if !isTerminal(w) {
		_, err := io.WriteString(w, sql)
		return err
	}

	return quick.Highlight(w, sql, "postgresql", "terminal256", "monokai")
}

func printSuccess(w io.Writer, format string, args ...any) {
	printStyled(w, successStyle, format, args...)
}

func printNotice(w io.Writer, format string, args ...any) {
	printStyled(w, noticeStyle, format, args...)
}

func printStyled(w io.Writer, style lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if isTerminal(w) {
		msg = style.Render(msg)
	}

	_, _ = fmt.Fprintln(w, msg)
}
