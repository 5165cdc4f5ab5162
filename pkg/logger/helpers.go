package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Icons and symbols for different log types
const (
	IconSuccess = "✅"
	IconError   = "❌"
	IconWarning = "⚠️"
	IconConfig  = "⚙️"
	IconFile    = "📄"
	IconRefresh = "🔄"
	IconCheck   = "✓"
	IconCross   = "✗"
	IconDot     = "•"
)

// Success logs a success message with a green checkmark
func Success(args ...interface{}) {
	defaultLogger.Info(IconSuccess + " " + fmt.Sprint(args...))
}

// Successf logs a formatted success message
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Progress logs a progress message with a refresh icon
func Progress(args ...interface{}) {
	defaultLogger.Info(IconRefresh + " " + fmt.Sprint(args...))
}

// Progressf logs a formatted progress message
func Progressf(format string, args ...interface{}) {
	Progress(fmt.Sprintf(format, args...))
}

// Table is a column-aligned table for terminal listings
type Table struct {
	headers []string
	rows    [][]string
	colors  map[int]func(cell string) *color.Color
}

// NewTable creates a new table
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    [][]string{},
		colors:  make(map[int]func(string) *color.Color),
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(values ...string) {
	t.rows = append(t.rows, values)
}

// ColorColumn paints the cells of column col with the color chosen by pick.
// A nil color leaves the cell plain.
func (t *Table) ColorColumn(col int, pick func(cell string) *color.Color) {
	t.colors[col] = pick
}

// Print prints the table to stdout
func (t *Table) Print() {
	_ = t.Fprint(os.Stdout)
}

// Fprint writes the table to w. Widths are measured on the plain text so
// colored columns stay aligned.
func (t *Table) Fprint(w io.Writer) error {
	if len(t.headers) == 0 {
		return nil
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	noColor := true
	if l, ok := defaultLogger.(*logger); ok {
		noColor = l.out.noColor
	}

	var b strings.Builder
	for i, h := range t.headers {
		fmt.Fprintf(&b, "%-*s  ", widths[i], h)
	}
	b.WriteString("\n")

	for i := range t.headers {
		b.WriteString(strings.Repeat("-", widths[i]) + "  ")
	}
	b.WriteString("\n")

	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			padded := fmt.Sprintf("%-*s", widths[i], cell)
			if pick, ok := t.colors[i]; ok && !noColor {
				if c := pick(cell); c != nil {
					padded = c.Sprint(padded)
				}
			}
			b.WriteString(padded + "  ")
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
