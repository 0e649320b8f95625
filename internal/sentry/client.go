// Package sentry provides a minimal client for the Sentry REST API.
package sentry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client is a minimal HTTP client for the Sentry API. It holds no per-call
// state; methods are safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  zerolog.Logger
}

// New returns a new client. If httpClient is nil the default client is used;
// timeouts are left to the platform defaults.
func New(baseURL, token string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
		logger:  logger,
	}
}

// ListProjects returns all projects visible in the organization.
func (c *Client) ListProjects(ctx context.Context, org string) ([]Project, error) {
	var out []Project
	path := "organizations/" + url.PathEscape(org) + "/projects/"
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ResolveShortID maps a project-prefixed short ID to its issue.
func (c *Client) ResolveShortID(ctx context.Context, org, shortID string) (*ShortIDResolution, error) {
	var out ShortIDResolution
	path := "organizations/" + url.PathEscape(org) + "/shortids/" + url.PathEscape(shortID) + "/"
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	if out.GroupID == "" && out.ShortID == "" {
		return nil, &DecodeError{Err: fmt.Errorf("short id resolution missing groupId")}
	}
	return &out, nil
}

// EventByID looks an event up by its hexadecimal event ID.
func (c *Client) EventByID(ctx context.Context, org, eventID string) (*EventLookup, error) {
	var out EventLookup
	path := "organizations/" + url.PathEscape(org) + "/eventids/" + url.PathEscape(eventID) + "/"
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	if out.Event == nil {
		return nil, &DecodeError{Err: fmt.Errorf("event lookup missing event field")}
	}
	return &out, nil
}

// ListProjectEvents returns the recent error events of a project.
func (c *Client) ListProjectEvents(ctx context.Context, org, project string) ([]Event, error) {
	var out []Event
	path := "projects/" + url.PathEscape(org) + "/" + url.PathEscape(project) + "/events/"
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProjectIssues returns the open issues of a project.
func (c *Client) ListProjectIssues(ctx context.Context, org, project string) ([]Issue, error) {
	var out []Issue
	path := "projects/" + url.PathEscape(org) + "/" + url.PathEscape(project) + "/issues/"
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListIssueEvents returns the events grouped under an issue.
func (c *Client) ListIssueEvents(ctx context.Context, org, issueID string) ([]Event, error) {
	var out []Event
	path := "organizations/" + url.PathEscape(org) + "/issues/" + url.PathEscape(issueID) + "/events/"
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Issue fetches a single issue by numeric ID.
func (c *Client) Issue(ctx context.Context, org, issueID string) (*Issue, error) {
	var out Issue
	path := "organizations/" + url.PathEscape(org) + "/issues/" + url.PathEscape(issueID) + "/"
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, &DecodeError{Err: fmt.Errorf("issue payload missing id")}
	}
	return &out, nil
}

// CreateProject creates a project under a team. Platform is optional.
func (c *Client) CreateProject(ctx context.Context, org, team, name, platform string) (*Project, error) {
	body := map[string]string{"name": name}
	if platform != "" {
		body["platform"] = platform
	}
	var out Project
	path := "teams/" + url.PathEscape(org) + "/" + url.PathEscape(team) + "/projects/"
	if err := c.post(ctx, path, body, &out); err != nil {
		return nil, err
	}
	if out.Slug == "" {
		return nil, &DecodeError{Err: fmt.Errorf("created project payload missing slug")}
	}
	return &out, nil
}

// ListClientKeys returns the client keys (DSNs) of a project.
func (c *Client) ListClientKeys(ctx context.Context, org, project string) ([]ClientKey, error) {
	var out []ClientKey
	path := "projects/" + url.PathEscape(org) + "/" + url.PathEscape(project) + "/keys/"
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplayQuery defines the supported replay list filters. All are optional.
type ReplayQuery struct {
	ProjectIDs  []string
	Environment string
	// StatsPeriod is a relative period token such as "24h" or "7d". When
	// set it takes precedence over Start/End.
	StatsPeriod string
	Start       string
	End         string
	Sort        string
	Query       string
	PerPage     int
	Cursor      string
}

func (q ReplayQuery) values() url.Values {
	v := url.Values{}
	for _, id := range q.ProjectIDs {
		v.Add("project", id)
	}
	if q.Environment != "" {
		v.Set("environment", q.Environment)
	}
	if q.StatsPeriod != "" {
		v.Set("statsPeriod", q.StatsPeriod)
	} else {
		if q.Start != "" {
			v.Set("start", q.Start)
		}
		if q.End != "" {
			v.Set("end", q.End)
		}
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Query != "" {
		v.Set("query", q.Query)
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Cursor != "" {
		v.Set("cursor", q.Cursor)
	}
	return v
}

// ListReplays returns session replays for the organization. The endpoint
// wraps its results in a data envelope; a missing envelope field yields an
// empty list.
func (c *Client) ListReplays(ctx context.Context, org string, q ReplayQuery) ([]Replay, error) {
	var out struct {
		Data []Replay `json:"data"`
	}
	path := "organizations/" + url.PathEscape(org) + "/replays/"
	if err := c.get(ctx, path, q.values(), &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return []Replay{}, nil
	}
	return out.Data, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// do executes a single request against the API: bearer auth and JSON headers
// on the way out, status-range check and shape-checked decode on the way
// back. Non-2xx responses become *APIError with the raw body attached;
// undecodable 2xx bodies become *DecodeError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := c.baseURL + "/" + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sentry api request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read sentry api response: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", reqURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("sentry api call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       strings.TrimSpace(string(data)),
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
