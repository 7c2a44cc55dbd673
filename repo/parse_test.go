package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Ref
	}{
		{"https", "https://github.com/alice/widgets", Ref{Owner: "alice", Name: "widgets"}},
		{"https with .git", "https://github.com/alice/widgets.git", Ref{Owner: "alice", Name: "widgets"}},
		{"https with branch", "https://github.com/alice/widgets/tree/develop", Ref{Owner: "alice", Name: "widgets", Branch: "develop"}},
		{"branch with slash", "https://github.com/alice/widgets/tree/feature/fast-scan", Ref{Owner: "alice", Name: "widgets", Branch: "feature/fast-scan"}},
		{"ssh", "git@github.com:alice/widgets.git", Ref{Owner: "alice", Name: "widgets"}},
		{"shorthand", "alice/widgets", Ref{Owner: "alice", Name: "widgets"}},
		{"trailing slash", "https://github.com/alice/widgets/", Ref{Owner: "alice", Name: "widgets"}},
		{"surrounding space", "  alice/widgets  ", Ref{Owner: "alice", Name: "widgets"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseURL_Rejects(t *testing.T) {
	for _, raw := range []string{
		"",
		"not a url",
		"https://gitlab.com/alice/widgets",
		"alice",
	} {
		_, err := ParseURL(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestRef_URLs(t *testing.T) {
	ref := Ref{Owner: "alice", Name: "widgets"}

	assert.Equal(t, "https://github.com/alice/widgets.git", ref.CloneURL())
	assert.Equal(t, "https://github.com/alice/widgets/archive/refs/heads/main.zip", ref.ArchiveURL("main"))
	assert.Equal(t, "https://github.com/alice/widgets/archive/HEAD.zip", ref.ArchiveURL("HEAD"))
	assert.Equal(t, "alice/widgets", ref.String())
	assert.Equal(t, "alice_widgets", ref.CacheKey())
}
