package render

import (
	"github.com/spo0nman/mcp-sentry/internal/sentry"
)

var projectLayouts = map[View]func(*doc, []sentry.Project){
	ViewSummary:  projectsSummary,
	ViewDetailed: projectsDetailed,
}

// Projects renders the project list report.
func Projects(projects []sentry.Project, m Mode) string {
	d := newDoc(m.Format)
	d.Heading("Sentry Projects")
	projectLayouts[m.View](d, projects)
	d.CountLine("Total Projects", len(projects))
	return d.String()
}

func projectsSummary(d *doc, projects []sentry.Project) {
	for _, p := range projects {
		d.Bullet(d.Bold(p.Name) + " (" + p.Slug + "): ID " + p.ID)
	}
}

func projectsDetailed(d *doc, projects []sentry.Project) {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{p.ID, p.Name, p.Slug, p.Platform})
	}
	d.Table([]string{"ID", "Name", "Slug", "Platform"}, rows)
	for _, p := range projects {
		d.Section(p.Name)
		d.Field("ID", p.ID)
		d.Field("Slug", p.Slug)
		d.Field("Platform", p.Platform)
		d.Field("Created", formatLocalTime(p.DateCreated))
		teams := make([]string, 0, len(p.Teams))
		for _, t := range p.Teams {
			teams = append(teams, t.Slug)
		}
		d.SubList("Teams", teams)
	}
}

var createdProjectLayouts = map[View]func(*doc, *sentry.Project, []sentry.ClientKey){
	ViewSummary:  createdProjectSummary,
	ViewDetailed: createdProjectDetailed,
}

// ProjectCreated renders the create_project report: the new project plus its
// client keys.
func ProjectCreated(p *sentry.Project, keys []sentry.ClientKey, m Mode) string {
	d := newDoc(m.Format)
	d.Heading("Sentry Project Created")
	createdProjectLayouts[m.View](d, p, keys)
	d.CountLine("Total Client Keys", len(keys))
	return d.String()
}

func createdProjectSummary(d *doc, p *sentry.Project, keys []sentry.ClientKey) {
	d.Bullet(d.Bold(p.Name) + " (" + p.Slug + "): ID " + p.ID)
	for _, k := range keys {
		if k.DSN.Public != "" {
			d.Bullet("DSN: " + k.DSN.Public)
		}
	}
}

func createdProjectDetailed(d *doc, p *sentry.Project, keys []sentry.ClientKey) {
	d.Field("Name", p.Name)
	d.Field("Slug", p.Slug)
	d.Field("ID", p.ID)
	d.Field("Platform", p.Platform)
	d.Field("Created", formatLocalTime(p.DateCreated))
	for _, k := range keys {
		label := k.Label
		if label == "" {
			label = k.Name
		}
		if label == "" {
			label = k.ID
		}
		d.Section("Client Key: " + label)
		d.Field("ID", k.ID)
		d.Field("Public Key", k.Public)
		d.Field("DSN", k.DSN.Public)
		d.Field("Security Endpoint", k.DSN.Security)
		d.Field("Minidump Endpoint", k.DSN.Minidump)
	}
}
