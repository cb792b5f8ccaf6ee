// Package generate drives package generation: directory creation, repository
// initialization, plugin artifact generation and the all-or-nothing rollback
// that removes the target directory on any failure.
package generate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkgsmith/pkgsmith/internal/core/ports"
	"github.com/pkgsmith/pkgsmith/internal/core/scaffold"
	"github.com/pkgsmith/pkgsmith/internal/licenses"
)

// ErrTargetExists reports that the target package directory already exists.
// Generation never touches a pre-existing directory.
var ErrTargetExists = errors.New("target directory already exists")

// CommitMessage is the fixed message for the generated-files commit.
const CommitMessage = "Files generated by pkgsmith"

// Option configures a single generation run.
type Option func(*options)

type options struct {
	repo      bool
	gitConfig map[string]string
}

// WithRepo controls repository initialization and the generated-files
// commit. Enabled by default.
func WithRepo(enabled bool) Option {
	return func(o *options) { o.repo = enabled }
}

// WithGitConfig applies repository-local configuration overrides after
// init, e.g. user.name and user.email.
func WithGitConfig(cfg map[string]string) Option {
	return func(o *options) { o.gitConfig = cfg }
}

// Generator generates packages from a Template. The collaborators are
// exclusively owned for the duration of one Generate call; concurrent calls
// against the same target are not supported.
type Generator struct {
	vcs ports.VCS
	pkg ports.PackageManager
	out io.Writer
}

// NewGenerator builds a Generator. out receives progress output and may be
// nil.
func NewGenerator(vcs ports.VCS, pkg ports.PackageManager, out io.Writer) *Generator {
	if out == nil {
		out = io.Discard
	}
	return &Generator{vcs: vcs, pkg: pkg, out: out}
}

// Generate scaffolds a new package named pkgName under the Template's base
// directory. On any failure the target directory is removed in its entirety
// and the original error is returned; a rollback failure is joined to it,
// never replacing it.
func (g *Generator) Generate(pkgName string, t *scaffold.Template, opts ...Option) (err error) {
	o := options{repo: true}
	for _, opt := range opts {
		opt(&o)
	}

	pkgDir := filepath.Join(t.Dir(), pkgName)
	if _, statErr := os.Stat(pkgDir); statErr == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, pkgDir)
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return statErr
	}

	// The active project is restored on every exit path, success or not.
	previous := g.pkg.Active()
	defer func() {
		if restoreErr := g.pkg.Activate(previous); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()

	if err = g.run(pkgName, pkgDir, t, o); err != nil {
		if rbErr := os.RemoveAll(pkgDir); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback of %s failed: %w", pkgDir, rbErr))
		}
		return err
	}

	fmt.Fprintf(g.out, "New package is at %s\n", pkgDir)
	return nil
}

func (g *Generator) run(pkgName, pkgDir string, t *scaffold.Template, o options) error {
	fmt.Fprintf(g.out, "Generating package %s in %s\n", pkgName, t.Dir())

	var repo ports.Repo
	if o.repo {
		r, err := g.initRepo(pkgName, pkgDir, t, o.gitConfig)
		if err != nil {
			return err
		}
		repo = r
	}

	manifest, err := g.generateArtifacts(pkgName, pkgDir, t)
	if err != nil {
		return err
	}

	ignorePath, err := writeGitignore(pkgDir, t)
	if err != nil {
		return err
	}

	if repo != nil {
		manifest = append(manifest, ignorePath)
		if t.Manifest() {
			manifest = append(manifest, lockfileName)
		}
		if err := repo.Add(manifest...); err != nil {
			return err
		}
		if err := repo.Commit(CommitMessage); err != nil {
			return err
		}
		branches, err := repo.Branches()
		if err != nil {
			return err
		}
		if len(branches) > 1 {
			fmt.Fprintln(g.out, "Remember to push all branches to your remote: git push --all")
		}
	}

	return g.pkg.Develop(pkgDir)
}

// initRepo creates the directory, initializes the repository with an empty
// initial commit, configures the remote, and creates the gh-pages branch
// when a pages plugin is enabled.
func (g *Generator) initRepo(pkgName, pkgDir string, t *scaffold.Template, cfg map[string]string) (ports.Repo, error) {
	if err := os.MkdirAll(pkgDir, 0o755); err != nil {
		return nil, err
	}
	repo, err := g.vcs.Init(pkgDir)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := repo.SetConfig(k, cfg[k]); err != nil {
			return nil, err
		}
	}

	if err := repo.Commit("Initial commit"); err != nil {
		return nil, err
	}
	if err := repo.SetRemote("origin", t.RemoteURL(pkgName)); err != nil {
		return nil, err
	}

	if t.HasPlugin(scaffold.KindGitHubPages) {
		if err := repo.CreateBranch("gh-pages"); err != nil {
			return nil, err
		}
		if err := repo.Commit("Initial commit"); err != nil {
			return nil, err
		}
		if err := repo.Checkout("master"); err != nil {
			return nil, err
		}
	}

	return repo, nil
}

// generateArtifacts runs the fixed artifact sequence and every plugin's
// Generate, returning the accumulated manifest of created paths.
func (g *Generator) generateArtifacts(pkgName, pkgDir string, t *scaffold.Template) ([]string, error) {
	manifest, err := g.pkg.GenerateSkeleton(pkgDir, pkgName, t.Authors(), t.JuliaVersion())
	if err != nil {
		return nil, err
	}
	if err := g.pkg.Activate(pkgDir); err != nil {
		return nil, err
	}

	testPaths, err := g.generateTests(pkgName, pkgDir)
	if err != nil {
		return nil, err
	}
	manifest = append(manifest, testPaths...)

	requirePath, err := generateRequire(pkgDir, t)
	if err != nil {
		return nil, err
	}
	manifest = append(manifest, requirePath)

	readmePath, err := generateReadme(pkgName, pkgDir, t)
	if err != nil {
		return nil, err
	}
	manifest = append(manifest, readmePath)

	if t.License() != "" {
		text, err := licenses.Render(t.License(), t.Authors(), time.Now().Year())
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(pkgDir, "LICENSE"), []byte(text), 0o644); err != nil {
			return nil, err
		}
		manifest = append(manifest, "LICENSE")
	}

	for _, p := range t.Plugins() {
		paths, err := p.Generate(t, pkgDir, pkgName)
		if err != nil {
			return nil, fmt.Errorf("plugin %s: %w", p.Name(), err)
		}
		manifest = append(manifest, paths...)
	}

	return manifest, nil
}
