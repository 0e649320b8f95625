package render

import (
	"strconv"

	"github.com/spo0nman/mcp-sentry/internal/sentry"
)

var replayLayouts = map[View]func(*doc, []sentry.Replay){
	ViewSummary:  replaysSummary,
	ViewDetailed: replaysDetailed,
}

// Replays renders the session replay list report. The cursor, when the
// request carried one, is echoed as a pagination note.
func Replays(replays []sentry.Replay, cursor string, m Mode) string {
	d := newDoc(m.Format)
	d.Heading("Sentry Replays")
	replayLayouts[m.View](d, replays)
	d.CountLine("Total Replays", len(replays))
	if cursor != "" {
		d.Blank()
		d.Line("Pagination cursor: " + cursor)
	}
	return d.String()
}

func replayTable(d *doc, replays []sentry.Replay) {
	rows := make([][]string, 0, len(replays))
	for _, r := range replays {
		rows = append(rows, []string{
			r.ID,
			r.ProjectID,
			formatDuration(r.Duration),
			strconv.Itoa(r.CountErrors),
			strconv.Itoa(r.CountDeadClicks),
			strconv.Itoa(r.CountRageClicks),
			formatLocalTime(r.StartedAt),
			formatLocalTime(r.FinishedAt),
		})
	}
	d.Table([]string{"Replay ID", "Project", "Duration", "Errors", "Dead Clicks", "Rage Clicks", "Started", "Finished"}, rows)
}

func replaysSummary(d *doc, replays []sentry.Replay) {
	replayTable(d, replays)
}

func replaysDetailed(d *doc, replays []sentry.Replay) {
	replayTable(d, replays)
	for i := range replays {
		r := &replays[i]
		d.Section(r.ID)
		d.Field("Project", r.ProjectID)
		d.Field("Environment", r.Environment)
		d.Field("Platform", r.Platform)
		d.Field("Started", formatLocalTime(r.StartedAt))
		d.Field("Finished", formatLocalTime(r.FinishedAt))
		d.Field("Duration", formatDuration(r.Duration))
		d.Field("Errors", strconv.Itoa(r.CountErrors))
		d.Field("Dead Clicks", strconv.Itoa(r.CountDeadClicks))
		d.Field("Rage Clicks", strconv.Itoa(r.CountRageClicks))
		d.Field("Segments", strconv.Itoa(r.CountSegments))
		d.Field("Activity", strconv.Itoa(r.Activity))
		if r.IsArchived {
			d.Field("Archived", "yes")
		}
		if r.User != nil {
			user := r.User.DisplayName
			if user == "" {
				user = r.User.Email
			}
			if user == "" {
				user = r.User.Username
			}
			d.Field("User", user)
		}
		d.Field("Browser", nameVersion(r.Browser))
		d.Field("OS", nameVersion(r.OS))
		d.Field("Device", nameVersion(r.Device))
		d.SubList("URLs", r.URLs)
		d.SubList("Releases", r.Releases)
		d.SubList("Error IDs", r.ErrorIDs)
		d.SubList("Trace IDs", r.TraceIDs)
	}
}

func nameVersion(nv *sentry.NameVersion) string {
	if nv == nil || nv.Name == "" {
		return ""
	}
	if nv.Version == "" {
		return nv.Name
	}
	return nv.Name + " " + nv.Version
}
