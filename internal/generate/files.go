package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkgsmith/pkgsmith/internal/core/scaffold"
)

const lockfileName = "Manifest.toml"

// Ignore entries present in every generated package.
var defaultGitignore = []string{".DS_Store", "/dev/"}

const runtestsTemplate = `using {{PKG}}
using Test

@testset "{{PKG}}" begin
    # Write your tests here.
end
`

// generateTests writes the test entrypoint, adds the test-framework
// dependency, moves it into the manifest's extras/targets sections and
// regenerates the lockfile.
func (g *Generator) generateTests(pkgName, pkgDir string) ([]string, error) {
	content, err := scaffold.Render(runtestsTemplate, map[string]interface{}{"PKG": pkgName})
	if err != nil {
		return nil, err
	}
	rel := filepath.Join("test", "runtests.jl")
	if err := os.MkdirAll(filepath.Join(pkgDir, "test"), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(pkgDir, rel), []byte(content), 0o644); err != nil {
		return nil, err
	}

	if err := g.pkg.AddDependency("Test"); err != nil {
		return nil, err
	}
	if err := moveTestToExtras(filepath.Join(pkgDir, "Project.toml")); err != nil {
		return nil, err
	}
	if err := g.pkg.UpdateLockfile(); err != nil {
		return nil, err
	}

	return []string{"test/"}, nil
}

// moveTestToExtras rewrites a Project.toml so the Test dependency lives in
// [extras] with a test target rather than in [deps].
func moveTestToExtras(projectFile string) error {
	raw, err := os.ReadFile(projectFile)
	if err != nil {
		return err
	}

	var kept []string
	var testLine string
	inDeps := false
	for _, line := range strings.Split(string(raw), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			inDeps = trimmed == "[deps]"
		}
		if inDeps && strings.HasPrefix(trimmed, "Test ") {
			testLine = trimmed
			continue
		}
		kept = append(kept, line)
	}
	if testLine == "" {
		return fmt.Errorf("no Test dependency found in %s", projectFile)
	}

	out := strings.TrimRight(strings.Join(kept, "\n"), "\n")
	out += fmt.Sprintf("\n\n[extras]\n%s\n\n[targets]\ntest = [\"Test\"]\n", testLine)
	return os.WriteFile(projectFile, []byte(out), 0o644)
}

// generateRequire writes the minimum-version requirement file.
func generateRequire(pkgDir string, t *scaffold.Template) (string, error) {
	content, err := t.RenderFor("julia {{VERSION}}\n", nil)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(pkgDir, "REQUIRE"), []byte(content), 0o644); err != nil {
		return "", err
	}
	return "REQUIRE", nil
}

// generateReadme writes the README: title, then each plugin's badge block in
// badge order, separated by blank lines.
func generateReadme(pkgName, pkgDir string, t *scaffold.Template) (string, error) {
	blocks := []string{"# " + pkgName}
	for _, p := range t.BadgeOrder() {
		badges := p.Badges(t.User(), pkgName)
		if len(badges) == 0 {
			continue
		}
		lines := make([]string, 0, len(badges))
		for _, b := range badges {
			lines = append(lines, b.Markdown())
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	content := strings.Join(blocks, "\n\n") + "\n"
	if err := os.WriteFile(filepath.Join(pkgDir, "README.md"), []byte(content), 0o644); err != nil {
		return "", err
	}
	return "README.md", nil
}

// writeGitignore merges the default ignore entries, every plugin's entries
// and, when the lockfile is not tracked, a lockfile entry; the result is
// deduplicated and sorted before writing.
func writeGitignore(pkgDir string, t *scaffold.Template) (string, error) {
	entries := MergedGitignore(t)
	content := strings.Join(entries, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(pkgDir, ".gitignore"), []byte(content), 0o644); err != nil {
		return "", err
	}
	return ".gitignore", nil
}

// MergedGitignore returns the deduplicated, sorted union of the default
// ignore entries, every plugin's entries, and the conditional lockfile
// entry.
func MergedGitignore(t *scaffold.Template) []string {
	seen := make(map[string]bool)
	var entries []string
	add := func(e string) {
		if !seen[e] {
			seen[e] = true
			entries = append(entries, e)
		}
	}

	for _, e := range defaultGitignore {
		add(e)
	}
	if !t.Manifest() {
		add(lockfileName)
	}
	for _, p := range t.Plugins() {
		for _, e := range p.GitignoreEntries() {
			add(e)
		}
	}

	sort.Strings(entries)
	return entries
}
