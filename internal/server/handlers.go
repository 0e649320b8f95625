package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/spo0nman/mcp-sentry/internal/render"
	"github.com/spo0nman/mcp-sentry/internal/sentry"
)

func (s *Server) handleListProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	org, err := req.RequireString("organization_slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := requestMode(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	projects, err := s.api.ListProjects(ctx, org)
	if err != nil {
		return s.errorResult("list_projects", err), nil
	}
	return mcp.NewToolResultText(render.Projects(projects, mode)), nil
}

func (s *Server) handleResolveShortID(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	org, err := req.RequireString("organization_slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	shortID, err := req.RequireString("short_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := formatMode(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := s.api.ResolveShortID(ctx, org, shortID)
	if err != nil {
		return s.errorResult("resolve_short_id", err), nil
	}
	return mcp.NewToolResultText(render.ShortID(res, mode)), nil
}

func (s *Server) handleGetEvent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, errResult := s.resolveIssueRef(req)
	if errResult != nil {
		return errResult, nil
	}
	eventID, err := req.RequireString("event_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := requestMode(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	lookup, err := s.api.EventByID(ctx, ref.Org, eventID)
	if err != nil {
		return s.errorResult("get_sentry_event", err), nil
	}
	return mcp.NewToolResultText(render.EventLookup(lookup, mode)), nil
}

func (s *Server) handleListProjectEvents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	org, err := req.RequireString("organization_slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	project, err := req.RequireString("project_slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := requestMode(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	events, err := s.api.ListProjectEvents(ctx, org, project)
	if err != nil {
		return s.errorResult("list_error_events_in_project", err), nil
	}
	heading := fmt.Sprintf("Sentry Error Events: %s/%s", org, project)
	return mcp.NewToolResultText(render.Events(heading, events, mode)), nil
}

func (s *Server) handleCreateProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	org, err := req.RequireString("organization_slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	team, err := req.RequireString("team_slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := requestMode(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	project, err := s.api.CreateProject(ctx, org, team, name, req.GetString("platform", ""))
	if err != nil {
		return s.errorResult("create_project", err), nil
	}
	keys, err := s.api.ListClientKeys(ctx, org, project.Slug)
	if err != nil {
		return s.errorResult("create_project", err), nil
	}
	return mcp.NewToolResultText(render.ProjectCreated(project, keys, mode)), nil
}

func (s *Server) handleListProjectIssues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	org, err := req.RequireString("organization_slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	project, err := req.RequireString("project_slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := requestMode(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	issues, err := s.api.ListProjectIssues(ctx, org, project)
	if err != nil {
		return s.errorResult("list_project_issues", err), nil
	}
	return mcp.NewToolResultText(render.Issues(project, issues, mode)), nil
}

func (s *Server) handleListIssueEvents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	org, err := req.RequireString("organization_slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	issueID, err := req.RequireString("issue_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := requestMode(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	events, err := s.api.ListIssueEvents(ctx, org, issueID)
	if err != nil {
		return s.errorResult("list_issue_events", err), nil
	}
	heading := "Sentry Events for Issue " + issueID
	return mcp.NewToolResultText(render.Events(heading, events, mode)), nil
}

func (s *Server) handleGetIssue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, errResult := s.resolveIssueRef(req)
	if errResult != nil {
		return errResult, nil
	}
	mode, err := requestMode(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	issue, err := s.api.Issue(ctx, ref.Org, ref.ID)
	if err != nil {
		return s.errorResult("get_sentry_issue", err), nil
	}
	return mcp.NewToolResultText(render.Issue(issue, mode)), nil
}

func (s *Server) handleListReplays(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	org, err := req.RequireString("organization_slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := requestMode(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	query := sentry.ReplayQuery{
		ProjectIDs:  stringSlice(req, "project_ids"),
		Environment: req.GetString("environment", ""),
		StatsPeriod: req.GetString("stats_period", ""),
		Start:       req.GetString("start", ""),
		End:         req.GetString("end", ""),
		Sort:        req.GetString("sort", ""),
		Query:       req.GetString("query", ""),
		PerPage:     req.GetInt("per_page", 0),
		Cursor:      req.GetString("cursor", ""),
	}
	replays, err := s.api.ListReplays(ctx, org, query)
	if err != nil {
		return s.errorResult("list_organization_replays", err), nil
	}
	return mcp.NewToolResultText(render.Replays(replays, query.Cursor, mode)), nil
}

func (s *Server) handleSetup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	org, err := req.RequireString("organization_slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	team, err := req.RequireString("team_slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := req.RequireString("project_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := formatMode(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	environment := req.GetString("environment", "")
	project, err := s.api.CreateProject(ctx, org, team, name, "")
	if err != nil {
		return s.errorResult("setup_sentry", err), nil
	}
	keys, err := s.api.ListClientKeys(ctx, org, project.Slug)
	if err != nil {
		return s.errorResult("setup_sentry", err), nil
	}
	return mcp.NewToolResultText(render.Setup(project, keys, environment, mode)), nil
}

// resolveIssueRef parses issue_id_or_url and resolves the organization slug:
// URL-embedded slug first, then the explicit parameter, then the configured
// default. With none available the call fails before any network request.
func (s *Server) resolveIssueRef(req mcp.CallToolRequest) (sentry.IssueRef, *mcp.CallToolResult) {
	raw, err := req.RequireString("issue_id_or_url")
	if err != nil {
		return sentry.IssueRef{}, mcp.NewToolResultError(err.Error())
	}
	ref, err := sentry.ParseIssueRef(raw)
	if err != nil {
		return sentry.IssueRef{}, mcp.NewToolResultError(err.Error())
	}
	if ref.Org == "" {
		ref.Org = req.GetString("organization_slug", "")
	}
	if ref.Org == "" {
		ref.Org = s.cfg.DefaultOrg
	}
	if ref.Org == "" {
		return sentry.IssueRef{}, mcp.NewToolResultError(
			"organization slug could not be determined: provide organization_slug, use a full issue URL, or set SENTRY_ORG")
	}
	return ref, nil
}

// requestMode validates the view/format pair.
func requestMode(req mcp.CallToolRequest) (render.Mode, error) {
	return render.ParseMode(
		req.GetString("view", "detailed"),
		req.GetString("format", "markdown"),
	)
}

// formatMode validates the format of tools that expose no view parameter;
// they always use the detailed layout.
func formatMode(req mcp.CallToolRequest) (render.Mode, error) {
	return render.ParseMode("detailed", req.GetString("format", "markdown"))
}

// stringSlice reads an array-of-string argument, preserving input order.
func stringSlice(req mcp.CallToolRequest, key string) []string {
	raw, ok := req.GetArguments()[key]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(item))
			}
		}
		return out
	}
	return nil
}

// errorResult converts a client error into a tool error result. Nothing is
// retried; the message carries enough detail for the caller to decide.
func (s *Server) errorResult(tool string, err error) *mcp.CallToolResult {
	var apiErr *sentry.APIError
	var decErr *sentry.DecodeError

	var msg string
	switch {
	case errors.As(err, &apiErr):
		msg = fmt.Sprintf("Sentry API error: %d %s: %s", apiErr.StatusCode, apiErr.Status, apiErr.Body)
	case errors.As(err, &decErr):
		msg = "Malformed response from Sentry API: " + decErr.Error()
	default:
		msg = "Failed to reach the Sentry API: " + err.Error()
	}
	s.logger.Error().Str("tool", tool).Err(err).Msg("tool call failed")
	return mcp.NewToolResultError(msg)
}
