package scaffold

import (
	"fmt"

	"github.com/pkgsmith/pkgsmith/internal/core/ports"
)

// TravisCI generates a .travis.yml build configuration and a build badge.
type TravisCI struct{}

// Name implements Plugin.
func (TravisCI) Name() string { return KindTravisCI }

// GitignoreEntries implements Plugin.
func (TravisCI) GitignoreEntries() []string { return nil }

// Badges implements Plugin.
func (TravisCI) Badges(user, pkgName string) []Badge {
	return []Badge{{
		Hover: "Build Status",
		Image: fmt.Sprintf("https://travis-ci.com/%s/%s.svg?branch=master", user, pkgName),
		Link:  fmt.Sprintf("https://travis-ci.com/%s/%s", user, pkgName),
	}}
}

// Generate implements Plugin.
func (TravisCI) Generate(t *Template, pkgDir, pkgName string) ([]string, error) {
	content, err := renderPluginTemplate(t, "travis.yml", nil)
	if err != nil {
		return nil, err
	}
	rel, err := writeGenerated(pkgDir, ".travis.yml", content)
	if err != nil {
		return nil, err
	}
	return []string{rel}, nil
}

// String implements Plugin.
func (TravisCI) String() string { return "TravisCI" }

// AppVeyor generates a .appveyor.yml Windows build configuration and badge.
type AppVeyor struct{}

// Name implements Plugin.
func (AppVeyor) Name() string { return KindAppVeyor }

// GitignoreEntries implements Plugin.
func (AppVeyor) GitignoreEntries() []string { return nil }

// Badges implements Plugin.
func (AppVeyor) Badges(user, pkgName string) []Badge {
	return []Badge{{
		Hover: "Build Status",
		Image: fmt.Sprintf("https://ci.appveyor.com/api/projects/status/github/%s/%s?svg=true", user, pkgName),
		Link:  fmt.Sprintf("https://ci.appveyor.com/project/%s/%s", user, pkgName),
	}}
}

// Generate implements Plugin.
func (AppVeyor) Generate(t *Template, pkgDir, pkgName string) ([]string, error) {
	content, err := renderPluginTemplate(t, "appveyor.yml", nil)
	if err != nil {
		return nil, err
	}
	rel, err := writeGenerated(pkgDir, ".appveyor.yml", content)
	if err != nil {
		return nil, err
	}
	return []string{rel}, nil
}

// String implements Plugin.
func (AppVeyor) String() string { return "AppVeyor" }

// GitLabCI generates a .gitlab-ci.yml pipeline. With Coverage enabled the
// pipeline submits coverage and a coverage badge is added.
type GitLabCI struct {
	// Coverage enables coverage measurement in the generated pipeline.
	Coverage bool
}

// Name implements Plugin.
func (GitLabCI) Name() string { return KindGitLabCI }

// GitignoreEntries implements Plugin.
func (g GitLabCI) GitignoreEntries() []string {
	if g.Coverage {
		return coverageGitignore()
	}
	return nil
}

// Badges implements Plugin.
func (g GitLabCI) Badges(user, pkgName string) []Badge {
	badges := []Badge{{
		Hover: "Build Status",
		Image: fmt.Sprintf("https://gitlab.com/%s/%s/badges/master/pipeline.svg", user, pkgName),
		Link:  fmt.Sprintf("https://gitlab.com/%s/%s/pipelines", user, pkgName),
	}}
	if g.Coverage {
		badges = append(badges, Badge{
			Hover: "Coverage",
			Image: fmt.Sprintf("https://gitlab.com/%s/%s/badges/master/coverage.svg", user, pkgName),
			Link:  fmt.Sprintf("https://gitlab.com/%s/%s/commits/master", user, pkgName),
		})
	}
	return badges
}

// Generate implements Plugin.
func (g GitLabCI) Generate(t *Template, pkgDir, pkgName string) ([]string, error) {
	content, err := renderPluginTemplate(t, "gitlab-ci.yml", map[string]interface{}{
		"PKG":            pkgName,
		"GITLABCOVERAGE": g.Coverage,
	})
	if err != nil {
		return nil, err
	}
	rel, err := writeGenerated(pkgDir, ".gitlab-ci.yml", content)
	if err != nil {
		return nil, err
	}
	return []string{rel}, nil
}

// DeclaresCoverage reports whether this pipeline submits coverage, feeding
// the unified COVERAGE view flag.
func (g GitLabCI) DeclaresCoverage() bool { return g.Coverage }

// String implements Plugin.
func (g GitLabCI) String() string {
	return fmt.Sprintf("GitLabCI(coverage=%t)", g.Coverage)
}

func buildGitLabCI(p ports.Prompter) (Plugin, error) {
	coverage, err := p.Confirm("Enable coverage measurement in the pipeline?", true)
	if err != nil {
		return nil, err
	}
	return GitLabCI{Coverage: coverage}, nil
}
