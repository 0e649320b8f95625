package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spo0nman/mcp-sentry/internal/sentry"
)

var webProject = sentry.Project{ID: "1", Name: "Web", Slug: "web", Platform: "javascript"}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("summary", "markdown")
	require.NoError(t, err)
	assert.Equal(t, Mode{View: ViewSummary, Format: FormatMarkdown}, m)

	_, err = ParseMode("full", "markdown")
	assert.ErrorContains(t, err, "invalid view")

	_, err = ParseMode("summary", "html")
	assert.ErrorContains(t, err, "invalid format")
}

func TestProjectsSummaryMarkdown(t *testing.T) {
	got := Projects([]sentry.Project{webProject}, Mode{View: ViewSummary, Format: FormatMarkdown})
	want := "# Sentry Projects\n\n- **Web** (web): ID 1\n\nTotal Projects: 1\n"
	assert.Equal(t, want, got)
}

func TestProjectsSummaryPlain(t *testing.T) {
	got := Projects([]sentry.Project{webProject}, Mode{View: ViewSummary, Format: FormatPlain})
	want := "Sentry Projects\n\nWeb (web): ID 1\n\nTotal Projects: 1\n"
	assert.Equal(t, want, got)
}

func TestProjectsDetailedMarkdown(t *testing.T) {
	p := webProject
	p.Teams = []sentry.Team{{Slug: "frontend"}}
	got := Projects([]sentry.Project{p}, Mode{View: ViewDetailed, Format: FormatMarkdown})

	assert.Contains(t, got, "# Sentry Projects\n")
	assert.Contains(t, got, "| ID | Name | Slug | Platform |")
	assert.Contains(t, got, "| --- | --- | --- | --- |")
	assert.Contains(t, got, "| 1 | Web | web | javascript |")
	assert.Contains(t, got, "## Web")
	assert.Contains(t, got, "- **Teams:**\n  - frontend\n")
	assert.Contains(t, got, "Total Projects: 1\n")
}

func TestDetailedIsSupersetOfSummary(t *testing.T) {
	issue := &sentry.Issue{
		ID: "42", ShortID: "WEB-1Z", Title: "TypeError", Status: "unresolved",
		Level: "error", Count: "128", UserCount: 7,
		FirstSeen: "2026-08-01T10:00:00Z", LastSeen: "2026-08-02T10:00:00Z",
		Culprit: "app/main.js", Permalink: "https://acme.sentry.io/issues/42/",
	}
	summary := Issue(issue, Mode{View: ViewSummary, Format: FormatPlain})
	detailed := Issue(issue, Mode{View: ViewDetailed, Format: FormatPlain})

	for _, line := range strings.Split(strings.TrimSpace(summary), "\n") {
		assert.Contains(t, detailed, line)
	}
	// Detailed-only fields never leak into summary.
	assert.Contains(t, detailed, "Culprit: app/main.js")
	assert.NotContains(t, summary, "Culprit")
}

func TestRenderingIsIdempotent(t *testing.T) {
	replays := []sentry.Replay{{ID: "r1", ProjectID: "11", Duration: 205, CountErrors: 2}}
	for _, m := range []Mode{
		{ViewSummary, FormatPlain},
		{ViewSummary, FormatMarkdown},
		{ViewDetailed, FormatPlain},
		{ViewDetailed, FormatMarkdown},
	} {
		assert.Equal(t, Replays(replays, "", m), Replays(replays, "", m))
	}
}

func TestDurationFormat(t *testing.T) {
	assert.Equal(t, "3m 25s", formatDuration(205))
	assert.Equal(t, "0m 0s", formatDuration(0))
	assert.Equal(t, "60m 0s", formatDuration(3600))
}

func TestSeriesTimeIsISO8601(t *testing.T) {
	assert.Equal(t, "1970-01-01T00:10:00Z", formatSeriesTime(600))
}

func TestIssueDetailedRendersTimeSeries(t *testing.T) {
	issue := &sentry.Issue{
		ID: "42", Title: "TypeError",
		Stats: &sentry.IssueStats{
			TwentyFourHours: []sentry.SeriesPoint{{600, 3}, {1200, 1}},
		},
	}
	got := Issue(issue, Mode{View: ViewDetailed, Format: FormatMarkdown})
	assert.Contains(t, got, "| Time | Count |")
	assert.Contains(t, got, "| 1970-01-01T00:10:00Z | 3 |")
	assert.Contains(t, got, "| 1970-01-01T00:20:00Z | 1 |")

	// Summary never includes the series.
	summary := Issue(issue, Mode{View: ViewSummary, Format: FormatMarkdown})
	assert.NotContains(t, summary, "| Time | Count |")
}

func TestEmptyReplayListKeepsTableHeader(t *testing.T) {
	got := Replays([]sentry.Replay{}, "", Mode{View: ViewSummary, Format: FormatMarkdown})
	assert.Contains(t, got, "| Replay ID | Project | Duration | Errors | Dead Clicks | Rage Clicks | Started | Finished |")
	assert.Contains(t, got, "Total Replays: 0\n")
	assert.NotContains(t, got, "Pagination cursor")
}

func TestReplayCursorNote(t *testing.T) {
	got := Replays([]sentry.Replay{}, "0:100:0", Mode{View: ViewSummary, Format: FormatMarkdown})
	assert.Contains(t, got, "Pagination cursor: 0:100:0\n")
}

func TestReplayDetailedOmitsEmptyOptionals(t *testing.T) {
	r := sentry.Replay{ID: "r1", ProjectID: "11", Duration: 65}
	got := Replays([]sentry.Replay{r}, "", Mode{View: ViewDetailed, Format: FormatMarkdown})

	assert.Contains(t, got, "## r1")
	assert.Contains(t, got, "- **Duration:** 1m 5s")
	assert.NotContains(t, got, "Environment")
	assert.NotContains(t, got, "URLs")
	assert.NotContains(t, got, "Browser")
}

func TestMarkdownTableEscapesPipes(t *testing.T) {
	issues := []sentry.Issue{{ID: "1", ShortID: "WEB-1", Title: "a | b", Status: "unresolved"}}
	got := Issues("web", issues, Mode{View: ViewSummary, Format: FormatMarkdown})
	assert.Contains(t, got, `a \| b`)
}

func TestSetupRendersDSNAndSnippet(t *testing.T) {
	p := &sentry.Project{ID: "7", Name: "API", Slug: "api"}
	keys := []sentry.ClientKey{{ID: "k1", DSN: sentry.DSN{Public: "https://abc@o1.ingest.sentry.io/7"}}}

	got := Setup(p, keys, "production", Mode{View: ViewDetailed, Format: FormatMarkdown})
	assert.Contains(t, got, "# Sentry Project Setup")
	assert.Contains(t, got, "- **DSN:** https://abc@o1.ingest.sentry.io/7")
	assert.Contains(t, got, "```javascript")
	assert.Contains(t, got, `dsn: "https://abc@o1.ingest.sentry.io/7",`)
	assert.Contains(t, got, `environment: "production",`)

	plain := Setup(p, keys, "", Mode{View: ViewDetailed, Format: FormatPlain})
	assert.NotContains(t, plain, "```")
	assert.NotContains(t, plain, "environment:")
}

func TestSetupWithoutKeys(t *testing.T) {
	p := &sentry.Project{ID: "7", Name: "API", Slug: "api"}
	got := Setup(p, nil, "", Mode{View: ViewDetailed, Format: FormatMarkdown})
	assert.Contains(t, got, "No client keys were returned")
	assert.NotContains(t, got, "Sentry.init")
}
