// Package scaffold holds the scaffolding domain: the reusable Template value
// object, the plugin contract and its built-in kinds, and the substitution
// engine used to render generated artifacts.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkgsmith/pkgsmith/internal/licenses"
)

// Default field values applied by New when the caller supplies nothing.
const (
	DefaultHost         = "github.com"
	DefaultLicense      = "MIT"
	DefaultJuliaVersion = "1.0"
)

// Template is the reusable, immutable configuration describing how to
// scaffold a package. Build one with New; it is read-only afterwards and is
// never mutated by generation.
type Template struct {
	user     string
	host     string
	license  string
	authors  string
	dir      string
	version  string
	ssh      bool
	manifest bool

	// Kind-keyed plugin bag with insertion order preserved. A kind
	// collision overwrites the instance but keeps the original slot.
	order   []string
	plugins map[string]Plugin
}

type templateConfig struct {
	Template
	licenseSet bool
}

// Option configures a Template under construction.
type Option func(*templateConfig)

// WithUser sets the account identifier used for remote URLs and badges.
func WithUser(user string) Option {
	return func(c *templateConfig) { c.user = user }
}

// WithHost sets the hosting service, e.g. "github.com".
func WithHost(host string) Option {
	return func(c *templateConfig) { c.host = host }
}

// WithLicense sets the license identifier. An empty string disables license
// file generation.
func WithLicense(code string) Option {
	return func(c *templateConfig) {
		c.license = code
		c.licenseSet = true
	}
}

// WithAuthors sets the attribution string used in copyright lines.
func WithAuthors(authors string) Option {
	return func(c *templateConfig) { c.authors = authors }
}

// WithDir sets the base directory under which packages are created. A
// leading ~ is expanded and the result is made absolute.
func WithDir(dir string) Option {
	return func(c *templateConfig) { c.dir = dir }
}

// WithJuliaVersion sets the minimum supported Julia version, e.g. "1.6".
func WithJuliaVersion(v string) Option {
	return func(c *templateConfig) { c.version = v }
}

// WithSSH selects ssh-form remote URLs instead of https.
func WithSSH(ssh bool) Option {
	return func(c *templateConfig) { c.ssh = ssh }
}

// WithManifest controls whether the lockfile is committed (true) or ignored
// (false).
func WithManifest(manifest bool) Option {
	return func(c *templateConfig) { c.manifest = manifest }
}

// WithPlugins adds plugin instances. Instances are folded into the
// kind-keyed bag in order; supplying two plugins of the same kind keeps the
// last one (last-write-wins), preserving the kind's first insertion slot.
func WithPlugins(plugins ...Plugin) Option {
	return func(c *templateConfig) {
		for _, p := range plugins {
			name := p.Name()
			if _, ok := c.plugins[name]; !ok {
				c.order = append(c.order, name)
			}
			c.plugins[name] = p
		}
	}
}

// New builds a Template. Field defaults: host github.com, license MIT,
// Julia version floor 1.0, base directory ~/dev. The user field is
// required. The license must be empty or resolve against the known license
// registry.
func New(opts ...Option) (*Template, error) {
	c := templateConfig{
		Template: Template{
			host:    DefaultHost,
			version: DefaultJuliaVersion,
			dir:     filepath.Join("~", "dev"),
			plugins: make(map[string]Plugin),
		},
	}
	for _, opt := range opts {
		opt(&c)
	}
	if !c.licenseSet {
		c.license = DefaultLicense
	}

	if strings.TrimSpace(c.user) == "" {
		return nil, fmt.Errorf("a user name is required")
	}
	if c.license != "" {
		if _, err := licenses.Resolve(c.license); err != nil {
			return nil, err
		}
	}

	dir, err := expandDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("resolve base directory: %w", err)
	}
	c.dir = dir

	t := c.Template
	return &t, nil
}

func expandDir(dir string) (string, error) {
	if dir == "~" || strings.HasPrefix(dir, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return filepath.Abs(dir)
}

// User returns the account identifier.
func (t *Template) User() string { return t.user }

// Host returns the hosting service.
func (t *Template) Host() string { return t.host }

// License returns the license identifier, empty when no license file is
// generated.
func (t *Template) License() string { return t.license }

// Authors returns the attribution string.
func (t *Template) Authors() string { return t.authors }

// Dir returns the absolute base directory for new packages.
func (t *Template) Dir() string { return t.dir }

// JuliaVersion returns the minimum supported Julia version.
func (t *Template) JuliaVersion() string { return t.version }

// SSH reports whether remote URLs use the ssh form.
func (t *Template) SSH() bool { return t.ssh }

// Manifest reports whether the lockfile is committed rather than ignored.
func (t *Template) Manifest() bool { return t.manifest }

// Plugins returns the held plugin instances in insertion order.
func (t *Template) Plugins() []Plugin {
	out := make([]Plugin, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.plugins[name])
	}
	return out
}

// Plugin returns the instance of the named kind, if held.
func (t *Template) Plugin(kind string) (Plugin, bool) {
	p, ok := t.plugins[kind]
	return p, ok
}

// HasPlugin reports whether a plugin of the named kind is held.
func (t *Template) HasPlugin(kind string) bool {
	_, ok := t.plugins[kind]
	return ok
}

// BadgeOrder returns the held plugins in README badge order: the fixed
// priority kinds first, then any remaining kinds in insertion order.
func (t *Template) BadgeOrder() []Plugin {
	out := make([]Plugin, 0, len(t.order))
	seen := make(map[string]bool, len(t.order))
	for _, name := range badgePriority {
		if p, ok := t.plugins[name]; ok {
			out = append(out, p)
			seen[name] = true
		}
	}
	for _, name := range t.order {
		if !seen[name] {
			out = append(out, t.plugins[name])
		}
	}
	return out
}

// RemoteURL computes the repository remote for a package, honoring the ssh
// preference.
func (t *Template) RemoteURL(pkgName string) string {
	if t.ssh {
		return fmt.Sprintf("git@%s:%s/%s.git", t.host, t.user, pkgName)
	}
	return fmt.Sprintf("https://%s/%s/%s", t.host, t.user, pkgName)
}

// String summarizes the Template for diagnostics.
func (t *Template) String() string {
	names := make([]string, 0, len(t.order))
	for _, p := range t.Plugins() {
		names = append(names, p.String())
	}
	return fmt.Sprintf("Template(user=%s host=%s license=%s plugins=[%s])",
		t.user, t.host, t.license, strings.Join(names, ", "))
}
