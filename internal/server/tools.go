package server

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools declares the full tool surface. Every parameter a handler
// reads is declared here; view/format always default to detailed markdown.
func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_projects",
			mcp.WithDescription("List all accessible Sentry projects for an organization."),
			mcp.WithString("organization_slug",
				mcp.Description("The slug of the organization to list projects for"),
				mcp.Required(),
			),
			viewParam(), formatParam(),
		),
		s.handleListProjects,
	)

	s.mcp.AddTool(
		mcp.NewTool("resolve_short_id",
			mcp.WithDescription("Retrieve details about an issue using its short ID (e.g. PROJ-123)."),
			mcp.WithString("organization_slug",
				mcp.Description("The slug of the organization the issue belongs to"),
				mcp.Required(),
			),
			mcp.WithString("short_id",
				mcp.Description("The short ID of the issue to resolve, e.g. PROJECT-1Z"),
				mcp.Required(),
			),
			formatParam(),
		),
		s.handleResolveShortID,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_sentry_event",
			mcp.WithDescription("Retrieve a specific Sentry event from an issue."),
			mcp.WithString("issue_id_or_url",
				mcp.Description("Either a full Sentry issue URL or a numeric issue ID"),
				mcp.Required(),
			),
			mcp.WithString("event_id",
				mcp.Description("The specific event ID to retrieve"),
				mcp.Required(),
			),
			mcp.WithString("organization_slug",
				mcp.Description("Organization slug; required when it cannot be derived from the issue URL or the SENTRY_ORG environment variable"),
			),
			viewParam(), formatParam(),
		),
		s.handleGetEvent,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_error_events_in_project",
			mcp.WithDescription("List error events from a specific Sentry project."),
			mcp.WithString("organization_slug",
				mcp.Description("The slug of the organization the project belongs to"),
				mcp.Required(),
			),
			mcp.WithString("project_slug",
				mcp.Description("The slug of the project to list events from"),
				mcp.Required(),
			),
			viewParam(), formatParam(),
		),
		s.handleListProjectEvents,
	)

	s.mcp.AddTool(
		mcp.NewTool("create_project",
			mcp.WithDescription("Create a new project in Sentry and fetch its client keys."),
			mcp.WithString("organization_slug",
				mcp.Description("The slug of the organization to create the project in"),
				mcp.Required(),
			),
			mcp.WithString("team_slug",
				mcp.Description("The slug of the team to assign the project to"),
				mcp.Required(),
			),
			mcp.WithString("name",
				mcp.Description("The name of the new project"),
				mcp.Required(),
			),
			mcp.WithString("platform",
				mcp.Description("Optional platform identifier for the new project, e.g. javascript or python"),
			),
			viewParam(), formatParam(),
		),
		s.handleCreateProject,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_project_issues",
			mcp.WithDescription("List issues from a specific Sentry project."),
			mcp.WithString("organization_slug",
				mcp.Description("The slug of the organization the project belongs to"),
				mcp.Required(),
			),
			mcp.WithString("project_slug",
				mcp.Description("The slug of the project to list issues from"),
				mcp.Required(),
			),
			viewParam(), formatParam(),
		),
		s.handleListProjectIssues,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_issue_events",
			mcp.WithDescription("List events for a specific Sentry issue."),
			mcp.WithString("organization_slug",
				mcp.Description("The slug of the organization the issue belongs to"),
				mcp.Required(),
			),
			mcp.WithString("issue_id",
				mcp.Description("The numeric ID of the issue to list events for"),
				mcp.Required(),
			),
			viewParam(), formatParam(),
		),
		s.handleListIssueEvents,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_sentry_issue",
			mcp.WithDescription("Retrieve and analyze a Sentry issue by ID or URL."),
			mcp.WithString("issue_id_or_url",
				mcp.Description("Either a full Sentry issue URL or a numeric issue ID"),
				mcp.Required(),
			),
			mcp.WithString("organization_slug",
				mcp.Description("Organization slug; required when it cannot be derived from the issue URL or the SENTRY_ORG environment variable"),
			),
			viewParam(), formatParam(),
		),
		s.handleGetIssue,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_organization_replays",
			mcp.WithDescription("List session replays from a Sentry organization."),
			mcp.WithString("organization_slug",
				mcp.Description("The slug of the organization to list replays from"),
				mcp.Required(),
			),
			mcp.WithArray("project_ids",
				mcp.Description("Numeric project IDs to filter replays by"),
				mcp.Items(map[string]any{"type": "string"}),
			),
			mcp.WithString("environment",
				mcp.Description("Environment to filter replays by"),
			),
			mcp.WithString("stats_period",
				mcp.Description("Relative time period, e.g. 24h or 7d (units: m, h, d, w). Takes precedence over start/end."),
			),
			mcp.WithString("start",
				mcp.Description("Start of an explicit date range (ISO 8601). Use together with end."),
			),
			mcp.WithString("end",
				mcp.Description("End of an explicit date range (ISO 8601). Use together with start."),
			),
			mcp.WithString("sort",
				mcp.Description("Field to sort replays by, e.g. -started_at"),
			),
			mcp.WithString("query",
				mcp.Description("Free-text search query to filter replays"),
			),
			mcp.WithNumber("per_page",
				mcp.Description("Number of replays per page"),
			),
			mcp.WithString("cursor",
				mcp.Description("Opaque pagination cursor from a previous response"),
			),
			viewParam(), formatParam(),
		),
		s.handleListReplays,
	)

	s.mcp.AddTool(
		mcp.NewTool("setup_sentry",
			mcp.WithDescription("Create a Sentry project and return its DSN with setup instructions."),
			mcp.WithString("organization_slug",
				mcp.Description("The slug of the organization to create the project in"),
				mcp.Required(),
			),
			mcp.WithString("team_slug",
				mcp.Description("The slug of the team to assign the project to"),
				mcp.Required(),
			),
			mcp.WithString("project_name",
				mcp.Description("The name of the project to create"),
				mcp.Required(),
			),
			mcp.WithString("environment",
				mcp.Description("Optional environment name to include in the setup snippet"),
			),
			formatParam(),
		),
		s.handleSetup,
	)
}

func viewParam() mcp.ToolOption {
	return mcp.WithString("view",
		mcp.Description("View type: summary or detailed"),
		mcp.Enum("summary", "detailed"),
		mcp.DefaultString("detailed"),
	)
}

func formatParam() mcp.ToolOption {
	return mcp.WithString("format",
		mcp.Description("Output format: plain or markdown"),
		mcp.Enum("plain", "markdown"),
		mcp.DefaultString("markdown"),
	)
}
