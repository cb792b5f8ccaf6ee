package scaffold

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkgsmith/pkgsmith/internal/licenses"
)

func TestNew_Defaults(t *testing.T) {
	tmpl, err := New(WithUser("jane"))
	require.NoError(t, err)

	assert.Equal(t, "jane", tmpl.User())
	assert.Equal(t, DefaultHost, tmpl.Host())
	assert.Equal(t, DefaultLicense, tmpl.License())
	assert.Equal(t, DefaultJuliaVersion, tmpl.JuliaVersion())
	assert.False(t, tmpl.SSH())
	assert.False(t, tmpl.Manifest())
	assert.True(t, filepath.IsAbs(tmpl.Dir()), "base directory should be absolute")
	assert.Empty(t, tmpl.Plugins())
}

func TestNew_RequiresUser(t *testing.T) {
	_, err := New()
	assert.Error(t, err, "a Template without a user should be rejected")
}

func TestNew_LicenseValidation(t *testing.T) {
	_, err := New(WithUser("jane"), WithLicense("NotALicense"))
	require.Error(t, err)
	assert.ErrorAs(t, err, &licenses.ErrUnknown{}, "unknown licenses are configuration errors")

	tmpl, err := New(WithUser("jane"), WithLicense(""))
	require.NoError(t, err, "an empty license disables license generation")
	assert.Empty(t, tmpl.License())
}

func TestNew_DirIsExpanded(t *testing.T) {
	dir := t.TempDir()
	tmpl, err := New(WithUser("jane"), WithDir(dir))
	require.NoError(t, err)
	assert.Equal(t, dir, tmpl.Dir())
}

func TestWithPlugins_LastWriteWinsOnKindCollision(t *testing.T) {
	tmpl, err := New(WithUser("jane"), WithPlugins(
		GitLabCI{Coverage: false},
		TravisCI{},
		GitLabCI{Coverage: true},
	))
	require.NoError(t, err)

	require.Len(t, tmpl.Plugins(), 2, "one instance per kind")

	p, ok := tmpl.Plugin(KindGitLabCI)
	require.True(t, ok)
	assert.True(t, p.(GitLabCI).Coverage, "the last supplied instance wins")

	// The colliding kind keeps its original insertion slot.
	names := []string{tmpl.Plugins()[0].Name(), tmpl.Plugins()[1].Name()}
	assert.Equal(t, []string{KindGitLabCI, KindTravisCI}, names)
}

func TestTemplate_RemoteURL(t *testing.T) {
	tests := []struct {
		name     string
		ssh      bool
		expected string
	}{
		{name: "HTTPSForm", ssh: false, expected: "https://github.com/jane/MyPkg"},
		{name: "SSHForm", ssh: true, expected: "git@github.com:jane/MyPkg.git"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := New(WithUser("jane"), WithSSH(tt.ssh))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tmpl.RemoteURL("MyPkg"))
		})
	}
}

func TestBadgeOrder_PriorityThenInsertion(t *testing.T) {
	docs, err := NewDocumenter(nil)
	require.NoError(t, err)

	// GitHubPages has no badge priority; inserted first it still sorts
	// after the priority kinds.
	tmpl, err := New(WithUser("jane"), WithPlugins(GitHubPages{}, docs, TravisCI{}))
	require.NoError(t, err)

	var names []string
	for _, p := range tmpl.BadgeOrder() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{KindTravisCI, KindDocumenter, KindGitHubPages}, names)
}
