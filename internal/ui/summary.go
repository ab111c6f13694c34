package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// FileStatus is the outcome of inspecting one file.
type FileStatus struct {
	Path     string
	Errors   int
	Warnings int
}

// Status returns "error", "warning" or "ok".
func (s FileStatus) Status() string {
	switch {
	case s.Errors > 0:
		return "error"
	case s.Warnings > 0:
		return "warning"
	}
	return "ok"
}

// Counts aggregates a round of inspections.
type Counts struct {
	Files    int
	Errors   int
	Warnings int
}

func Total(files []FileStatus) Counts {
	c := Counts{Files: len(files)}
	for _, f := range files {
		c.Errors += f.Errors
		c.Warnings += f.Warnings
	}
	return c
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "ok":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	case "warning":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func paint(status string, colored bool, s string) string {
	if !colored {
		return s
	}
	return styleStatus(status).Render(s)
}

// StatusTable пишет по строке на файл: статус, путь и счётчики.
// width > 0 ограничивает ширину строки, длинные пути укорачиваются слева.
func StatusTable(w io.Writer, files []FileStatus, width int, colored bool) error {
	for _, f := range files {
		status := f.Status()
		counts := ""
		if f.Errors > 0 || f.Warnings > 0 {
			counts = fmt.Sprintf("  %d/%d", f.Errors, f.Warnings)
		}
		path := f.Path
		if width > 0 {
			path = truncateLeft(path, width-9-len(counts))
		}
		label := paint(status, colored, fmt.Sprintf("%-7s", status))
		if _, err := fmt.Fprintf(w, "  %s %s%s\n", label, path, counts); err != nil {
			return err
		}
	}
	return nil
}

// Summary пишет итоговую строку вида "3 files: 1 error, 2 warnings".
func Summary(w io.Writer, c Counts, colored bool) error {
	head := paint("", colored, fmt.Sprintf("%d %s:", c.Files, plural(c.Files, "file")))
	var err error
	if c.Errors == 0 && c.Warnings == 0 {
		_, err = fmt.Fprintf(w, "%s %s\n", head, paint("ok", colored, "no problems"))
		return err
	}
	_, err = fmt.Fprintf(w, "%s %s, %s\n", head,
		paint("error", colored, fmt.Sprintf("%d %s", c.Errors, plural(c.Errors, "error"))),
		paint("warning", colored, fmt.Sprintf("%d %s", c.Warnings, plural(c.Warnings, "warning"))))
	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// truncateLeft keeps the tail of value within width display cells.
func truncateLeft(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return strings.Repeat(".", width)
	}
	runes := []rune(value)
	keep := 0
	cells := 0
	for i := len(runes) - 1; i >= 0; i-- {
		rw := runewidth.RuneWidth(runes[i])
		if cells+rw > width-3 {
			break
		}
		cells += rw
		keep++
	}
	return "..." + string(runes[len(runes)-keep:])
}
