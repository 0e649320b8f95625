package render

import (
	"strconv"

	"github.com/spo0nman/mcp-sentry/internal/sentry"
)

var issueListLayouts = map[View]func(*doc, []sentry.Issue){
	ViewSummary:  issueListSummary,
	ViewDetailed: issueListDetailed,
}

// Issues renders the project issue list report.
func Issues(project string, issues []sentry.Issue, m Mode) string {
	d := newDoc(m.Format)
	d.Heading("Sentry Issues: " + project)
	issueListLayouts[m.View](d, issues)
	d.CountLine("Total Issues", len(issues))
	return d.String()
}

func issueTableRows(issues []sentry.Issue) [][]string {
	rows := make([][]string, 0, len(issues))
	for _, is := range issues {
		rows = append(rows, []string{
			is.ShortID, is.Title, is.Status, is.Level, is.Count, formatLocalTime(is.LastSeen),
		})
	}
	return rows
}

func issueListSummary(d *doc, issues []sentry.Issue) {
	d.Table([]string{"Short ID", "Title", "Status", "Level", "Events", "Last Seen"}, issueTableRows(issues))
}

func issueListDetailed(d *doc, issues []sentry.Issue) {
	d.Table([]string{"Short ID", "Title", "Status", "Level", "Events", "Last Seen"}, issueTableRows(issues))
	for i := range issues {
		is := &issues[i]
		name := is.ShortID
		if name == "" {
			name = is.ID
		}
		d.Section(name)
		issueFields(d, is, true)
	}
}

var issueLayouts = map[View]func(*doc, *sentry.Issue){
	ViewSummary:  func(d *doc, is *sentry.Issue) { issueFields(d, is, false) },
	ViewDetailed: func(d *doc, is *sentry.Issue) { issueFields(d, is, true) },
}

// Issue renders a single-issue report.
func Issue(is *sentry.Issue, m Mode) string {
	d := newDoc(m.Format)
	name := is.ShortID
	if name == "" {
		name = is.ID
	}
	d.Heading("Sentry Issue: " + name)
	issueLayouts[m.View](d, is)
	return d.String()
}

// issueFields writes the shared issue field block. The detailed block is a
// strict superset of the summary block.
func issueFields(d *doc, is *sentry.Issue, detailed bool) {
	d.Field("ID", is.ID)
	d.Field("Title", is.Title)
	d.Field("Status", is.Status)
	d.Field("Level", is.Level)
	d.Field("First Seen", formatLocalTime(is.FirstSeen))
	d.Field("Last Seen", formatLocalTime(is.LastSeen))
	d.Field("Events", is.Count)
	if is.UserCount > 0 {
		d.Field("Users Affected", strconv.Itoa(is.UserCount))
	}
	if !detailed {
		return
	}
	if is.Project != nil {
		d.Field("Project", is.Project.Slug)
	}
	d.Field("Platform", is.Platform)
	d.Field("Culprit", is.Culprit)
	d.Field("Permalink", is.Permalink)
	if is.Metadata != nil {
		d.Field("Error Type", is.Metadata.Type)
		d.Field("Error Value", is.Metadata.Value)
		d.Field("Filename", is.Metadata.Filename)
	}
	if is.NumComments > 0 {
		d.Field("Comments", strconv.Itoa(is.NumComments))
	}
	if is.Stats != nil && len(is.Stats.TwentyFourHours) > 0 {
		d.Blank()
		d.Line(d.Bold("Events (24h)"))
		d.Blank()
		seriesTable(d, is.Stats.TwentyFourHours)
	}
}

// seriesTable renders a [epoch-seconds, count] series as a two-column table.
func seriesTable(d *doc, points []sentry.SeriesPoint) {
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			formatSeriesTime(p[0]),
			strconv.Itoa(int(p[1])),
		})
	}
	d.Table([]string{"Time", "Count"}, rows)
}

// ShortID renders the short-ID resolution report.
func ShortID(res *sentry.ShortIDResolution, m Mode) string {
	d := newDoc(m.Format)
	d.Heading("Short ID Resolution: " + res.ShortID)
	d.Field("Organization", res.OrganizationSlug)
	d.Field("Project", res.ProjectSlug)
	d.Field("Issue ID", res.GroupID)
	if res.Group != nil {
		d.Section("Issue")
		issueFields(d, res.Group, m.View == ViewDetailed)
	}
	return d.String()
}
