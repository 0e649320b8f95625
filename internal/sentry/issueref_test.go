package sentry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIssueRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    IssueRef
		wantErr bool
	}{
		{
			name:  "bare numeric id",
			input: "42",
			want:  IssueRef{ID: "42"},
		},
		{
			name:  "subdomain url",
			input: "https://acme.sentry.io/issues/42",
			want:  IssueRef{Org: "acme", ID: "42"},
		},
		{
			name:  "subdomain url with trailing slash and query",
			input: "https://acme.sentry.io/issues/42/?project=11",
			want:  IssueRef{Org: "acme", ID: "42"},
		},
		{
			name:  "organizations path url",
			input: "https://sentry.io/organizations/acme/issues/42/",
			want:  IssueRef{Org: "acme", ID: "42"},
		},
		{
			name:  "self hosted url without org",
			input: "https://sentry.example.com/issues/42/",
			want:  IssueRef{ID: "42"},
		},
		{
			name:    "empty",
			input:   "  ",
			wantErr: true,
		},
		{
			name:    "non numeric id",
			input:   "WEB-1Z",
			wantErr: true,
		},
		{
			name:    "url without issue id",
			input:   "https://acme.sentry.io/projects/web/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIssueRef(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
