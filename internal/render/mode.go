// Package render turns validated Sentry API payloads into deterministic
// plain-text or markdown reports.
package render

import "fmt"

// View selects between the terse and exhaustive report layouts.
type View string

// Format selects the output syntax.
type Format string

const (
	ViewSummary  View = "summary"
	ViewDetailed View = "detailed"

	FormatPlain    Format = "plain"
	FormatMarkdown Format = "markdown"
)

// Mode is the (view, format) pair selecting a rendering template. All four
// combinations are valid for every resource.
type Mode struct {
	View   View
	Format Format
}

// ParseMode validates caller-supplied view/format values.
func ParseMode(view, format string) (Mode, error) {
	m := Mode{View: View(view), Format: Format(format)}
	switch m.View {
	case ViewSummary, ViewDetailed:
	default:
		return Mode{}, fmt.Errorf("invalid view %q: must be %q or %q", view, ViewSummary, ViewDetailed)
	}
	switch m.Format {
	case FormatPlain, FormatMarkdown:
	default:
		return Mode{}, fmt.Errorf("invalid format %q: must be %q or %q", format, FormatPlain, FormatMarkdown)
	}
	return m, nil
}
