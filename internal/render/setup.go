package render

import (
	"fmt"
	"strings"

	"github.com/spo0nman/mcp-sentry/internal/sentry"
)

// Setup renders the setup_sentry report: the newly created project, its DSN,
// and an instrumentation snippet ready to paste.
func Setup(p *sentry.Project, keys []sentry.ClientKey, environment string, m Mode) string {
	d := newDoc(m.Format)
	d.Heading("Sentry Project Setup")
	d.Field("Project", p.Name)
	d.Field("Slug", p.Slug)
	d.Field("ID", p.ID)
	d.Field("Platform", p.Platform)
	d.Field("Environment", environment)

	dsn := firstDSN(keys)
	if dsn == "" {
		d.Blank()
		d.Line("No client keys were returned for the new project; create one in Sentry to obtain a DSN.")
		return d.String()
	}
	d.Field("DSN", dsn)

	d.Blank()
	d.Line("Add the following to your application:")
	d.CodeBlock("javascript", initSnippet(dsn, environment))
	return d.String()
}

func firstDSN(keys []sentry.ClientKey) string {
	for _, k := range keys {
		if k.DSN.Public != "" {
			return k.DSN.Public
		}
	}
	return ""
}

func initSnippet(dsn, environment string) string {
	var b strings.Builder
	b.WriteString("import * as Sentry from \"@sentry/node\";\n\n")
	b.WriteString("Sentry.init({\n")
	fmt.Fprintf(&b, "  dsn: %q,\n", dsn)
	if environment != "" {
		fmt.Fprintf(&b, "  environment: %q,\n", environment)
	}
	b.WriteString("  tracesSampleRate: 1.0,\n")
	b.WriteString("});\n")
	return b.String()
}
