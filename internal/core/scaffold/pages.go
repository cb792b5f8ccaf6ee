package scaffold

// GitHubPages marks the package for GitHub Pages documentation hosting. It
// writes no files of its own; repository initialization creates the
// gh-pages branch when this plugin is enabled, and the Documenter build
// script adds a deploy step.
type GitHubPages struct{}

// Name implements Plugin.
func (GitHubPages) Name() string { return KindGitHubPages }

// GitignoreEntries implements Plugin.
func (GitHubPages) GitignoreEntries() []string { return nil }

// Badges implements Plugin.
func (GitHubPages) Badges(user, pkgName string) []Badge { return nil }

// Generate implements Plugin.
func (GitHubPages) Generate(t *Template, pkgDir, pkgName string) ([]string, error) {
	return nil, nil
}

// String implements Plugin.
func (GitHubPages) String() string { return "GitHubPages" }
