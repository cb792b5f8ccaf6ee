package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkgsmith/pkgsmith/internal/core/ports"
)

//go:embed templates
var pluginTemplates embed.FS

// Badge is a markdown image link contributed to the generated README.
type Badge struct {
	Hover string
	Image string
	Link  string
}

// Markdown renders the badge as [![Hover](Image)](Link).
func (b Badge) Markdown() string {
	return fmt.Sprintf("[![%s](%s)](%s)", b.Hover, b.Image, b.Link)
}

// Plugin is a self-contained unit contributing ignore entries, badges and
// generated files to a package. Implementations are immutable values holding
// only their own configuration; contextual data (user, host, package name)
// is passed in explicitly. Plugins never inspect each other.
type Plugin interface {
	// Name returns the stable kind identifier. At most one plugin per kind
	// can be held by a Template.
	Name() string

	// GitignoreEntries returns path globs this plugin wants excluded from
	// version control.
	GitignoreEntries() []string

	// Badges returns the badges this plugin contributes to the README.
	Badges(user, pkgName string) []Badge

	// Generate performs this plugin's filesystem side effects under pkgDir
	// and returns the created paths, relative to pkgDir, for inclusion in
	// the initial commit. It is called exactly once per generation.
	Generate(t *Template, pkgDir, pkgName string) ([]string, error)

	// String returns a short human-readable summary of the configuration.
	String() string
}

// coverageDeclarer is implemented by CI plugins whose configuration can
// enable coverage submission.
type coverageDeclarer interface {
	DeclaresCoverage() bool
}

// Kind describes an available plugin kind for discovery and interactive
// construction.
type Kind struct {
	// Name is the stable kind identifier, matching Plugin.Name.
	Name string
	// Code is the short code typed in the interactive multi-select.
	Code string
	// Summary is a one-line description shown in menus.
	Summary string
	// Interactive prompts for this kind's configuration and constructs an
	// instance.
	Interactive func(p ports.Prompter) (Plugin, error)
	// Default constructs an instance with default configuration, for
	// non-interactive flag-driven selection.
	Default func() Plugin
}

// badgePriority fixes the order of README badge blocks for the listed kinds.
// Kinds not listed here follow in Template insertion order.
var badgePriority = []string{
	KindTravisCI,
	KindAppVeyor,
	KindGitLabCI,
	KindCodecov,
	KindCoveralls,
	KindDocumenter,
}

// Stable kind identifiers.
const (
	KindDocumenter  = "Documenter"
	KindTravisCI    = "TravisCI"
	KindAppVeyor    = "AppVeyor"
	KindGitLabCI    = "GitLabCI"
	KindCodecov     = "Codecov"
	KindCoveralls   = "Coveralls"
	KindGitHubPages = "GitHubPages"
)

// Kinds returns every available plugin kind in display order.
func Kinds() []Kind {
	return []Kind{
		{
			Name:        KindTravisCI,
			Code:        "travis",
			Summary:     "Travis CI build configuration and badge",
			Interactive: func(ports.Prompter) (Plugin, error) { return TravisCI{}, nil },
			Default:     func() Plugin { return TravisCI{} },
		},
		{
			Name:        KindAppVeyor,
			Code:        "appveyor",
			Summary:     "AppVeyor (Windows) build configuration and badge",
			Interactive: func(ports.Prompter) (Plugin, error) { return AppVeyor{}, nil },
			Default:     func() Plugin { return AppVeyor{} },
		},
		{
			Name:        KindGitLabCI,
			Code:        "gitlab",
			Summary:     "GitLab CI pipeline configuration and badges",
			Interactive: buildGitLabCI,
			Default:     func() Plugin { return GitLabCI{Coverage: true} },
		},
		{
			Name:        KindCodecov,
			Code:        "codecov",
			Summary:     "Codecov coverage reporting",
			Interactive: buildCodecov,
			Default:     func() Plugin { return Codecov{} },
		},
		{
			Name:        KindCoveralls,
			Code:        "coveralls",
			Summary:     "Coveralls coverage reporting",
			Interactive: buildCoveralls,
			Default:     func() Plugin { return Coveralls{} },
		},
		{
			Name:        KindDocumenter,
			Code:        "docs",
			Summary:     "Documenter.jl documentation tree",
			Interactive: buildDocumenter,
			Default:     func() Plugin { d, _ := NewDocumenter(nil); return d },
		},
		{
			Name:        KindGitHubPages,
			Code:        "pages",
			Summary:     "GitHub Pages hosting (gh-pages branch)",
			Interactive: func(ports.Prompter) (Plugin, error) { return GitHubPages{}, nil },
			Default:     func() Plugin { return GitHubPages{} },
		},
	}
}

// KindByCode looks up a kind by its short code.
func KindByCode(code string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.Code == code {
			return k, true
		}
	}
	return Kind{}, false
}

// renderPluginTemplate renders an embedded plugin template against the
// Template's baseline view plus extras.
func renderPluginTemplate(t *Template, name string, extra map[string]interface{}) (string, error) {
	raw, err := pluginTemplates.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("read embedded template %s: %w", name, err)
	}
	return t.RenderFor(string(raw), extra)
}

// writeGenerated writes a generated file under pkgDir, creating parent
// directories, and returns its path relative to pkgDir.
func writeGenerated(pkgDir, rel, content string) (string, error) {
	abs := filepath.Join(pkgDir, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return "", err
	}
	return rel, nil
}
