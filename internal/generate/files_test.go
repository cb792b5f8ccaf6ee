package generate

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/pkgsmith/pkgsmith/internal/core/scaffold"
)

// ignorePlugin contributes only gitignore entries, for merge testing.
type ignorePlugin struct {
	kind    string
	entries []string
}

func (p ignorePlugin) Name() string                        { return p.kind }
func (p ignorePlugin) GitignoreEntries() []string          { return p.entries }
func (ignorePlugin) Badges(_, _ string) []scaffold.Badge   { return nil }
func (ignorePlugin) Generate(*scaffold.Template, string, string) ([]string, error) {
	return nil, nil
}
func (p ignorePlugin) String() string { return p.kind }

// badgePlugin contributes a single named badge, for ordering tests.
type badgePlugin struct {
	kind string
}

func (p badgePlugin) Name() string               { return p.kind }
func (badgePlugin) GitignoreEntries() []string   { return nil }
func (p badgePlugin) Badges(user, pkg string) []scaffold.Badge {
	return []scaffold.Badge{{Hover: p.kind, Image: "img", Link: "link"}}
}
func (badgePlugin) Generate(*scaffold.Template, string, string) ([]string, error) {
	return nil, nil
}
func (p badgePlugin) String() string { return p.kind }

func TestMergedGitignore_UnionIsDeduplicatedAndSorted(t *testing.T) {
	tmpl, err := scaffold.New(
		scaffold.WithUser("jane"),
		scaffold.WithPlugins(
			ignorePlugin{kind: "A", entries: []string{"*.cov", "build/"}},
			ignorePlugin{kind: "B", entries: []string{"build/", "*.mem"}},
		),
	)
	require.NoError(t, err)

	entries := MergedGitignore(tmpl)
	assert.Equal(t, []string{"*.cov", "*.mem", ".DS_Store", "/dev/", "Manifest.toml", "build/"}, entries)
}

func TestMergedGitignore_ManifestFlag(t *testing.T) {
	tracked, err := scaffold.New(scaffold.WithUser("jane"), scaffold.WithManifest(true))
	require.NoError(t, err)
	assert.NotContains(t, MergedGitignore(tracked), "Manifest.toml",
		"a tracked lockfile must not be ignored")

	ignored, err := scaffold.New(scaffold.WithUser("jane"), scaffold.WithManifest(false))
	require.NoError(t, err)
	assert.Contains(t, MergedGitignore(ignored), "Manifest.toml")
}

func TestMergedGitignore_Properties(t *testing.T) {
	entryGen := rapid.StringMatching(`[a-z*./]{1,8}`)

	rapid.Check(t, func(t *rapid.T) {
		entriesA := rapid.SliceOfN(entryGen, 0, 5).Draw(t, "entriesA")
		entriesB := rapid.SliceOfN(entryGen, 0, 5).Draw(t, "entriesB")
		manifest := rapid.Bool().Draw(t, "manifest")

		tmpl, err := scaffold.New(
			scaffold.WithUser("jane"),
			scaffold.WithManifest(manifest),
			scaffold.WithPlugins(
				ignorePlugin{kind: "A", entries: entriesA},
				ignorePlugin{kind: "B", entries: entriesB},
			),
		)
		if err != nil {
			t.Fatalf("template construction failed: %v", err)
		}

		entries := MergedGitignore(tmpl)

		if !sort.StringsAreSorted(entries) {
			t.Fatalf("entries not sorted: %v", entries)
		}
		seen := map[string]bool{}
		for _, e := range entries {
			if seen[e] {
				t.Fatalf("duplicate entry %q in %v", e, entries)
			}
			seen[e] = true
		}
		for _, def := range defaultGitignore {
			if !seen[def] {
				t.Fatalf("default entry %q missing from %v", def, entries)
			}
		}
		for _, e := range append(entriesA, entriesB...) {
			if !seen[e] {
				t.Fatalf("plugin entry %q missing from %v", e, entries)
			}
		}
		// manifest=true must exclude the lockfile entry, manifest=false
		// must include it.
		if manifest == seen[lockfileName] {
			t.Fatalf("lockfile entry presence %v inconsistent with manifest=%v", seen[lockfileName], manifest)
		}
	})
}

func TestGenerateReadme_BadgeOrdering(t *testing.T) {
	// A non-priority kind inserted first still sorts after the priority
	// kinds; priority kinds keep their fixed relative order.
	tmpl, err := scaffold.New(
		scaffold.WithUser("jane"),
		scaffold.WithPlugins(
			badgePlugin{kind: "Custom"},
			scaffold.GitLabCI{Coverage: true},
			scaffold.TravisCI{},
		),
	)
	require.NoError(t, err)

	pkgDir := t.TempDir()
	rel, err := generateReadme("MyPkg", pkgDir, tmpl)
	require.NoError(t, err)
	assert.Equal(t, "README.md", rel)

	raw, err := os.ReadFile(filepath.Join(pkgDir, "README.md"))
	require.NoError(t, err)
	content := string(raw)

	travis := strings.Index(content, "travis-ci.com")
	gitlab := strings.Index(content, "gitlab.com")
	custom := strings.Index(content, "[![Custom]")
	require.True(t, travis > 0 && gitlab > 0 && custom > 0, "all badge blocks present")
	assert.Less(t, travis, gitlab, "TravisCI badges precede GitLabCI badges")
	assert.Less(t, gitlab, custom, "priority kinds precede non-priority kinds")

	assert.Contains(t, content, "\n\n[![", "badge blocks are separated by blank lines")
}

func TestMoveTestToExtras(t *testing.T) {
	project := filepath.Join(t.TempDir(), "Project.toml")
	content := `name = "MyPkg"
uuid = "00000000-0000-0000-0000-000000000000"
version = "0.1.0"

[deps]
Test = "8dfed614-e22c-5e08-85e1-65c5234f0b40"
`
	require.NoError(t, os.WriteFile(project, []byte(content), 0o644))
	require.NoError(t, moveTestToExtras(project))

	raw, err := os.ReadFile(project)
	require.NoError(t, err)
	rewritten := string(raw)

	assert.Contains(t, rewritten, "[extras]\nTest = \"8dfed614-e22c-5e08-85e1-65c5234f0b40\"")
	assert.Contains(t, rewritten, "[targets]\ntest = [\"Test\"]")
	assert.NotRegexp(t, `\[deps\][^\[]*Test`, rewritten)
}

func TestMoveTestToExtras_MissingTestDependency(t *testing.T) {
	project := filepath.Join(t.TempDir(), "Project.toml")
	require.NoError(t, os.WriteFile(project, []byte("name = \"MyPkg\"\n"), 0o644))
	assert.Error(t, moveTestToExtras(project))
}

func TestGenerateRequire(t *testing.T) {
	tmpl, err := scaffold.New(scaffold.WithUser("jane"), scaffold.WithJuliaVersion("1.6"))
	require.NoError(t, err)

	pkgDir := t.TempDir()
	rel, err := generateRequire(pkgDir, tmpl)
	require.NoError(t, err)
	assert.Equal(t, "REQUIRE", rel)

	raw, err := os.ReadFile(filepath.Join(pkgDir, "REQUIRE"))
	require.NoError(t, err)
	assert.Equal(t, "julia 1.6\n", string(raw))
}
