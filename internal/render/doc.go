package render

import (
	"fmt"
	"strings"
)

// doc accumulates a report in one of the two output formats. The layout
// functions describe structure (headings, tables, fields); doc maps that
// structure to markdown or plain text so each resource only needs one
// summary and one detailed layout.
type doc struct {
	format Format
	b      strings.Builder
}

func newDoc(f Format) *doc {
	return &doc{format: f}
}

func (d *doc) String() string { return d.b.String() }

// Blank ensures the output ends with exactly one empty line. Safe to call
// repeatedly.
func (d *doc) Blank() {
	s := d.b.String()
	if s == "" || strings.HasSuffix(s, "\n\n") {
		return
	}
	d.b.WriteString("\n")
}

func (d *doc) Line(text string) {
	d.b.WriteString(text)
	d.b.WriteString("\n")
}

// Heading opens the report with its title.
func (d *doc) Heading(text string) {
	if d.format == FormatMarkdown {
		d.Line("# " + text)
	} else {
		d.Line(text)
	}
	d.Blank()
}

// Section starts a per-item subsection.
func (d *doc) Section(text string) {
	d.Blank()
	if d.format == FormatMarkdown {
		d.Line("## " + text)
		d.Blank()
	} else {
		d.Line(text)
	}
}

// Bullet writes one list entry.
func (d *doc) Bullet(text string) {
	if d.format == FormatMarkdown {
		d.Line("- " + text)
	} else {
		d.Line(text)
	}
}

// Field writes one labelled value. Empty values are omitted entirely.
func (d *doc) Field(label, value string) {
	if value == "" {
		return
	}
	if d.format == FormatMarkdown {
		d.Line("- **" + label + ":** " + value)
	} else {
		d.Line(label + ": " + value)
	}
}

// SubList writes a labelled nested list, omitted when empty.
func (d *doc) SubList(label string, items []string) {
	if len(items) == 0 {
		return
	}
	if d.format == FormatMarkdown {
		d.Line("- **" + label + ":**")
	} else {
		d.Line(label + ":")
	}
	for _, it := range items {
		d.Line("  - " + it)
	}
}

// Table writes a tabular summary. In markdown this is a pipe table with a
// header row; in plain text each row becomes its label/value lines with a
// blank line between rows, and the header row is not repeated.
func (d *doc) Table(headers []string, rows [][]string) {
	if d.format == FormatMarkdown {
		d.Line("| " + strings.Join(headers, " | ") + " |")
		sep := make([]string, len(headers))
		for i := range sep {
			sep[i] = "---"
		}
		d.Line("| " + strings.Join(sep, " | ") + " |")
		for _, row := range rows {
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = strings.ReplaceAll(c, "|", "\\|")
			}
			d.Line("| " + strings.Join(cells, " | ") + " |")
		}
		d.Blank()
		return
	}
	for _, row := range rows {
		for i, c := range row {
			if c == "" || i >= len(headers) {
				continue
			}
			d.Line(headers[i] + ": " + c)
		}
		d.Blank()
	}
}

// CountLine closes the report with a trailing total.
func (d *doc) CountLine(label string, n int) {
	d.Blank()
	d.Line(fmt.Sprintf("%s: %d", label, n))
}

// CodeBlock writes a code snippet, fenced in markdown and verbatim in plain
// text.
func (d *doc) CodeBlock(lang, code string) {
	d.Blank()
	if d.format == FormatMarkdown {
		d.Line("```" + lang)
		d.Line(strings.TrimRight(code, "\n"))
		d.Line("```")
	} else {
		d.Line(strings.TrimRight(code, "\n"))
	}
	d.Blank()
}

// Bold emphasizes text in markdown; plain text passes through.
func (d *doc) Bold(text string) string {
	if d.format == FormatMarkdown {
		return "**" + text + "**"
	}
	return text
}
