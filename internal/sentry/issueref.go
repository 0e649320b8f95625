package sentry

import (
	"fmt"
	"net/url"
	"strings"
)

// IssueRef is a parsed issue reference: the numeric issue ID plus the
// organization slug when one could be extracted from an issue URL.
type IssueRef struct {
	Org string
	ID  string
}

// ParseIssueRef accepts either a bare numeric issue ID or a full Sentry
// issue URL such as https://acme.sentry.io/issues/42 or
// https://sentry.io/organizations/acme/issues/42/. For URLs the organization
// slug is extracted from the subdomain or the /organizations/ path segment.
func ParseIssueRef(raw string) (IssueRef, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return IssueRef{}, fmt.Errorf("issue reference is empty")
	}
	if !strings.Contains(s, "://") {
		if !isDigits(s) {
			return IssueRef{}, fmt.Errorf("invalid issue reference %q: expected a numeric issue ID or a Sentry issue URL", raw)
		}
		return IssueRef{ID: s}, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return IssueRef{}, fmt.Errorf("invalid issue URL %q: %w", raw, err)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	ref := IssueRef{}
	for i, seg := range segments {
		if seg == "issues" && i+1 < len(segments) {
			ref.ID = segments[i+1]
		}
		if seg == "organizations" && i+1 < len(segments) {
			ref.Org = segments[i+1]
		}
	}
	if ref.ID == "" || !isDigits(ref.ID) {
		return IssueRef{}, fmt.Errorf("invalid issue URL %q: no numeric issue ID found", raw)
	}
	if ref.Org == "" {
		host := u.Hostname()
		if labels := strings.Split(host, "."); len(labels) > 2 && strings.HasSuffix(host, ".sentry.io") && labels[0] != "sentry" {
			ref.Org = labels[0]
		}
	}
	return ref, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
