package sentry

// Typed views of the Sentry API payloads. Only the fields the report
// renderers read are declared; everything else in the remote response is
// dropped at decode time. Optional fields stay zero-valued when absent.

// Team is a minimal team reference embedded in project payloads.
type Team struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Project is a Sentry project as returned by the projects and
// project-creation endpoints.
type Project struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Platform     string `json:"platform"`
	DateCreated  string `json:"dateCreated"`
	IsBookmarked bool   `json:"isBookmarked"`
	Teams        []Team `json:"teams"`
}

// ProjectRef is the compact project reference embedded in issues.
type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// IssueMetadata carries the error-specific details of an issue.
type IssueMetadata struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Filename string `json:"filename"`
}

// SeriesPoint is one [epoch-seconds, count] pair of a time series.
type SeriesPoint [2]float64

// IssueStats holds the event-count time series attached to an issue.
type IssueStats struct {
	TwentyFourHours []SeriesPoint `json:"24h"`
	ThirtyDays      []SeriesPoint `json:"30d"`
}

// Issue is a Sentry issue (error group).
type Issue struct {
	ID          string         `json:"id"`
	ShortID     string         `json:"shortId"`
	Title       string         `json:"title"`
	Culprit     string         `json:"culprit"`
	Permalink   string         `json:"permalink"`
	Level       string         `json:"level"`
	Status      string         `json:"status"`
	Platform    string         `json:"platform"`
	Type        string         `json:"type"`
	Project     *ProjectRef    `json:"project"`
	Metadata    *IssueMetadata `json:"metadata"`
	NumComments int            `json:"numComments"`
	// Count is a stringified integer in the remote API.
	Count     string      `json:"count"`
	UserCount int         `json:"userCount"`
	FirstSeen string      `json:"firstSeen"`
	LastSeen  string      `json:"lastSeen"`
	Stats     *IssueStats `json:"stats"`
}

// EventTag is one key/value tag on an event.
type EventTag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// EventUser identifies the user an event was reported for.
type EventUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	IPAddress string `json:"ipAddress"`
}

// Event is a single error event.
type Event struct {
	ID          string     `json:"id"`
	EventID     string     `json:"eventID"`
	GroupID     string     `json:"groupID"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Culprit     string     `json:"culprit"`
	Platform    string     `json:"platform"`
	Type        string     `json:"event.type"`
	DateCreated string     `json:"dateCreated"`
	User        *EventUser `json:"user"`
	Tags        []EventTag `json:"tags"`
}

// EventLookup is the response of the organization event-ID resolution
// endpoint: the event plus where it lives.
type EventLookup struct {
	OrganizationSlug string `json:"organizationSlug"`
	ProjectSlug      string `json:"projectSlug"`
	GroupID          string `json:"groupId"`
	EventID          string `json:"eventId"`
	Event            *Event `json:"event"`
}

// ShortIDResolution maps a short ID back to its organization, project, and
// issue.
type ShortIDResolution struct {
	OrganizationSlug string `json:"organizationSlug"`
	ProjectSlug      string `json:"projectSlug"`
	GroupID          string `json:"groupId"`
	ShortID          string `json:"shortId"`
	Group            *Issue `json:"group"`
}

// NameVersion is a browser/OS/device descriptor on a replay.
type NameVersion struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ReplayUser identifies the user behind a session replay.
type ReplayUser struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Replay is one recorded user session with its interaction metrics.
type Replay struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Environment string `json:"environment"`
	Platform    string `json:"platform"`
	StartedAt   string `json:"started_at"`
	FinishedAt  string `json:"finished_at"`
	// Duration is total seconds.
	Duration        int          `json:"duration"`
	CountErrors     int          `json:"count_errors"`
	CountSegments   int          `json:"count_segments"`
	CountURLs       int          `json:"count_urls"`
	CountDeadClicks int          `json:"count_dead_clicks"`
	CountRageClicks int          `json:"count_rage_clicks"`
	Activity        int          `json:"activity"`
	IsArchived      bool         `json:"is_archived"`
	URLs            []string     `json:"urls"`
	Releases        []string     `json:"releases"`
	ErrorIDs        []string     `json:"error_ids"`
	TraceIDs        []string     `json:"trace_ids"`
	User            *ReplayUser  `json:"user"`
	Browser         *NameVersion `json:"browser"`
	OS              *NameVersion `json:"os"`
	Device          *NameVersion `json:"device"`
}

// DSN holds the connection strings minted for a client key.
type DSN struct {
	Public   string `json:"public"`
	Secret   string `json:"secret"`
	CSP      string `json:"csp"`
	Security string `json:"security"`
	Minidump string `json:"minidump"`
	CDN      string `json:"cdn"`
}

// ClientKey is a project client key with its DSNs.
type ClientKey struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Label     string `json:"label"`
	Public    string `json:"public"`
	Secret    string `json:"secret"`
	ProjectID int64  `json:"projectId"`
	IsActive  bool   `json:"isActive"`
	DSN       DSN    `json:"dsn"`
}
