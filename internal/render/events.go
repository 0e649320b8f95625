package render

import (
	"github.com/spo0nman/mcp-sentry/internal/sentry"
)

var eventListLayouts = map[View]func(*doc, []sentry.Event){
	ViewSummary:  eventListSummary,
	ViewDetailed: eventListDetailed,
}

// Events renders an event list report under the given heading. Both the
// project event list and the per-issue event list use this layout.
func Events(heading string, events []sentry.Event, m Mode) string {
	d := newDoc(m.Format)
	d.Heading(heading)
	eventListLayouts[m.View](d, events)
	d.CountLine("Total Events", len(events))
	return d.String()
}

func eventTableRows(events []sentry.Event) [][]string {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{eventName(&e), e.Title, formatLocalTime(e.DateCreated)})
	}
	return rows
}

func eventName(e *sentry.Event) string {
	if e.EventID != "" {
		return e.EventID
	}
	return e.ID
}

func eventListSummary(d *doc, events []sentry.Event) {
	d.Table([]string{"Event ID", "Title", "Date"}, eventTableRows(events))
}

func eventListDetailed(d *doc, events []sentry.Event) {
	d.Table([]string{"Event ID", "Title", "Date"}, eventTableRows(events))
	for i := range events {
		e := &events[i]
		d.Section(eventName(e))
		eventFields(d, e)
	}
}

func eventFields(d *doc, e *sentry.Event) {
	d.Field("Title", e.Title)
	d.Field("Message", e.Message)
	d.Field("Platform", e.Platform)
	d.Field("Date", formatLocalTime(e.DateCreated))
	d.Field("Culprit", e.Culprit)
	d.Field("Issue ID", e.GroupID)
	if e.User != nil {
		user := e.User.Email
		if user == "" {
			user = e.User.Username
		}
		if user == "" {
			user = e.User.ID
		}
		d.Field("User", user)
	}
	tags := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		tags = append(tags, t.Key+": "+t.Value)
	}
	d.SubList("Tags", tags)
}

var eventLookupLayouts = map[View]func(*doc, *sentry.EventLookup){
	ViewSummary:  eventLookupSummary,
	ViewDetailed: eventLookupDetailed,
}

// EventLookup renders the single-event report from an event-ID lookup.
func EventLookup(l *sentry.EventLookup, m Mode) string {
	d := newDoc(m.Format)
	d.Heading("Sentry Event: " + l.EventID)
	eventLookupLayouts[m.View](d, l)
	return d.String()
}

func eventLookupSummary(d *doc, l *sentry.EventLookup) {
	d.Field("Organization", l.OrganizationSlug)
	d.Field("Project", l.ProjectSlug)
	d.Field("Issue ID", l.GroupID)
	if l.Event != nil {
		d.Field("Title", l.Event.Title)
		d.Field("Date", formatLocalTime(l.Event.DateCreated))
	}
}

func eventLookupDetailed(d *doc, l *sentry.EventLookup) {
	d.Field("Organization", l.OrganizationSlug)
	d.Field("Project", l.ProjectSlug)
	d.Field("Issue ID", l.GroupID)
	if l.Event != nil {
		d.Blank()
		eventFields(d, l.Event)
	}
}
