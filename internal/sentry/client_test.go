package sentry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return New(ts.URL, "test-token", ts.Client(), zerolog.Nop())
}

func TestListProjects(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/organizations/acme/projects/", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`[{"id":"1","name":"Web","slug":"web","teams":[],"platform":"javascript"}]`))
	})

	projects, err := c.ListProjects(context.Background(), "acme")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Web", projects[0].Name)
	assert.Equal(t, "web", projects[0].Slug)
	assert.Equal(t, "javascript", projects[0].Platform)
}

func TestListProjectsEscapesSlug(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/organizations/my%20org/projects/", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.ListProjects(context.Background(), "my org")
	require.NoError(t, err)
}

func TestAPIErrorCarriesStatusAndBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail":"You do not have permission to perform this action."}`))
	})

	_, err := c.ListProjects(context.Background(), "acme")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "Forbidden", apiErr.Status)
	assert.Contains(t, apiErr.Body, "do not have permission")
	assert.Contains(t, err.Error(), "403")
}

func TestMalformedBodyIsDecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})

	_, err := c.ListProjects(context.Background(), "acme")
	require.Error(t, err)

	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)
}

func TestWrongShapeIsDecodeError(t *testing.T) {
	// List endpoint returning an object instead of an array.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"detail":"ok"}`))
	})

	_, err := c.ListProjectIssues(context.Background(), "acme", "web")
	require.Error(t, err)

	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)
}

func TestIssueMissingIDIsDecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title":"no id field"}`))
	})

	_, err := c.Issue(context.Background(), "acme", "42")
	require.Error(t, err)

	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)
}

func TestCreateProject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/teams/acme/backend/projects/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"name": "API", "platform": "go"}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"7","name":"API","slug":"api","platform":"go"}`))
	})

	p, err := c.CreateProject(context.Background(), "acme", "backend", "API", "go")
	require.NoError(t, err)
	assert.Equal(t, "api", p.Slug)
}

func TestCreateProjectOmitsEmptyPlatform(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "platform")
		_, _ = w.Write([]byte(`{"id":"7","name":"API","slug":"api"}`))
	})

	_, err := c.CreateProject(context.Background(), "acme", "backend", "API", "")
	require.NoError(t, err)
}

func TestListReplaysQueryAssembly(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/organizations/acme/replays/", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, []string{"11", "7", "23"}, q["project"])
		assert.Equal(t, "production", q.Get("environment"))
		assert.Equal(t, "-started_at", q.Get("sort"))
		assert.Equal(t, "dead_clicks:>0", q.Get("query"))
		assert.Equal(t, "25", q.Get("per_page"))
		assert.Equal(t, "0:100:0", q.Get("cursor"))

		_, _ = w.Write([]byte(`{"data":[{"id":"r1","project_id":"11","duration":205}]}`))
	})

	replays, err := c.ListReplays(context.Background(), "acme", ReplayQuery{
		ProjectIDs:  []string{"11", "7", "23"},
		Environment: "production",
		Sort:        "-started_at",
		Query:       "dead_clicks:>0",
		PerPage:     25,
		Cursor:      "0:100:0",
	})
	require.NoError(t, err)
	require.Len(t, replays, 1)
	assert.Equal(t, 205, replays[0].Duration)
}

func TestStatsPeriodTakesPrecedenceOverStartEnd(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1d", q.Get("statsPeriod"))
		assert.False(t, q.Has("start"))
		assert.False(t, q.Has("end"))
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	_, err := c.ListReplays(context.Background(), "acme", ReplayQuery{
		StatsPeriod: "1d",
		Start:       "2026-08-01T00:00:00Z",
		End:         "2026-08-02T00:00:00Z",
	})
	require.NoError(t, err)
}

func TestStartEndUsedWithoutStatsPeriod(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("statsPeriod"))
		assert.Equal(t, "2026-08-01T00:00:00Z", q.Get("start"))
		assert.Equal(t, "2026-08-02T00:00:00Z", q.Get("end"))
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	_, err := c.ListReplays(context.Background(), "acme", ReplayQuery{
		Start: "2026-08-01T00:00:00Z",
		End:   "2026-08-02T00:00:00Z",
	})
	require.NoError(t, err)
}

func TestListReplaysMissingEnvelopeDefaultsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	replays, err := c.ListReplays(context.Background(), "acme", ReplayQuery{})
	require.NoError(t, err)
	require.NotNil(t, replays)
	assert.Empty(t, replays)
}

func TestResolveShortID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/organizations/acme/shortids/WEB-1Z/", r.URL.Path)
		_, _ = w.Write([]byte(`{"organizationSlug":"acme","projectSlug":"web","groupId":"42","shortId":"WEB-1Z","group":{"id":"42","title":"TypeError"}}`))
	})

	res, err := c.ResolveShortID(context.Background(), "acme", "WEB-1Z")
	require.NoError(t, err)
	assert.Equal(t, "42", res.GroupID)
	require.NotNil(t, res.Group)
	assert.Equal(t, "TypeError", res.Group.Title)
}

func TestEventByID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/organizations/acme/eventids/abc123/", r.URL.Path)
		_, _ = w.Write([]byte(`{"organizationSlug":"acme","projectSlug":"web","groupId":"42","eventId":"abc123","event":{"eventID":"abc123","title":"TypeError"}}`))
	})

	lookup, err := c.EventByID(context.Background(), "acme", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "42", lookup.GroupID)
	assert.Equal(t, "TypeError", lookup.Event.Title)
}
