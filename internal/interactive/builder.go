// Package interactive assembles a scaffold.Template by walking a fixed
// question sequence, delegating per-plugin questions to each kind's own
// interactive constructor.
package interactive

import (
	"fmt"
	"strings"

	"github.com/pkgsmith/pkgsmith/internal/core/ports"
	"github.com/pkgsmith/pkgsmith/internal/core/scaffold"
	"github.com/pkgsmith/pkgsmith/internal/licenses"
)

// noLicense is the menu entry selecting no license file.
const noLicense = "None"

// pluginsDone is the sentinel answer ending the plugin multi-select.
const pluginsDone = "none"

// Config carries the menu configuration for the license question. It
// replaces any notion of process-global defaults.
type Config struct {
	// Licenses is the closed license menu. Defaults to the registry codes.
	Licenses []string
	// DefaultLicense is the pre-selected menu entry.
	DefaultLicense string
}

// DefaultConfig returns the standard license menu.
func DefaultConfig() Config {
	return Config{
		Licenses:       licenses.Codes(),
		DefaultLicense: scaffold.DefaultLicense,
	}
}

// Seed carries field values the caller supplied up front. A non-nil field
// is used verbatim and its question is skipped entirely.
type Seed struct {
	User         *string
	Host         *string
	License      *string
	Authors      *string
	Dir          *string
	JuliaVersion *string
	SSH          *bool
	Manifest     *bool
	// Plugins, when non-nil, skips the plugin multi-select.
	Plugins []scaffold.Plugin
}

// Build walks the question sequence and constructs a Template. With fast
// set, every question except the user name and the plugin multi-select is
// skipped and defaults apply. The result is structurally identical to a
// Template built directly with the same effective values.
func Build(p ports.Prompter, cfg Config, seed Seed, fast bool) (*scaffold.Template, error) {
	if len(cfg.Licenses) == 0 {
		cfg = DefaultConfig()
	}

	var opts []scaffold.Option

	user, err := askString(p, seed.User, "Username", "")
	if err != nil {
		return nil, err
	}
	opts = append(opts, scaffold.WithUser(user))

	if !fast {
		if seed.Host != nil {
			opts = append(opts, scaffold.WithHost(*seed.Host))
		} else {
			host, err := p.Input("Code hosting service", scaffold.DefaultHost)
			if err != nil {
				return nil, err
			}
			opts = append(opts, scaffold.WithHost(host))
		}

		license, err := askLicense(p, cfg, seed.License)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scaffold.WithLicense(license))

		authors, err := askString(p, seed.Authors, "Authors", "")
		if err != nil {
			return nil, err
		}
		opts = append(opts, scaffold.WithAuthors(authors))

		dir, err := askString(p, seed.Dir, "Base directory for new packages", "~/dev")
		if err != nil {
			return nil, err
		}
		opts = append(opts, scaffold.WithDir(dir))

		version, err := askString(p, seed.JuliaVersion, "Minimum Julia version", scaffold.DefaultJuliaVersion)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scaffold.WithJuliaVersion(version))

		ssh, err := askBool(p, seed.SSH, "Use ssh remote URLs?", false)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scaffold.WithSSH(ssh))

		manifest, err := askBool(p, seed.Manifest, "Commit the Manifest.toml lockfile?", false)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scaffold.WithManifest(manifest))
	} else {
		opts = append(opts, seedOptions(seed)...)
	}

	plugins := seed.Plugins
	if plugins == nil {
		plugins, err = askPlugins(p)
		if err != nil {
			return nil, err
		}
	}
	opts = append(opts, scaffold.WithPlugins(plugins...))

	return scaffold.New(opts...)
}

// Options turns every pre-supplied field into Template options, for the
// non-interactive construction path.
func (s Seed) Options() []scaffold.Option {
	opts := seedOptions(s)
	if s.User != nil {
		opts = append(opts, scaffold.WithUser(*s.User))
	}
	if s.Plugins != nil {
		opts = append(opts, scaffold.WithPlugins(s.Plugins...))
	}
	return opts
}

// seedOptions turns pre-supplied fields into Template options for fast mode,
// where the corresponding questions are never asked.
func seedOptions(seed Seed) []scaffold.Option {
	var opts []scaffold.Option
	if seed.Host != nil {
		opts = append(opts, scaffold.WithHost(*seed.Host))
	}
	if seed.License != nil {
		opts = append(opts, scaffold.WithLicense(*seed.License))
	}
	if seed.Authors != nil {
		opts = append(opts, scaffold.WithAuthors(*seed.Authors))
	}
	if seed.Dir != nil {
		opts = append(opts, scaffold.WithDir(*seed.Dir))
	}
	if seed.JuliaVersion != nil {
		opts = append(opts, scaffold.WithJuliaVersion(*seed.JuliaVersion))
	}
	if seed.SSH != nil {
		opts = append(opts, scaffold.WithSSH(*seed.SSH))
	}
	if seed.Manifest != nil {
		opts = append(opts, scaffold.WithManifest(*seed.Manifest))
	}
	return opts
}

func askString(p ports.Prompter, supplied *string, question, def string) (string, error) {
	if supplied != nil {
		return *supplied, nil
	}
	return p.Input(question, def)
}

func askBool(p ports.Prompter, supplied *bool, question string, def bool) (bool, error) {
	if supplied != nil {
		return *supplied, nil
	}
	return p.Confirm(question, def)
}

func askLicense(p ports.Prompter, cfg Config, supplied *string) (string, error) {
	def := cfg.DefaultLicense
	if supplied != nil {
		// A pre-supplied license is used verbatim; the menu is skipped.
		return *supplied, nil
	}
	choice, err := p.Select("License", append([]string{noLicense}, cfg.Licenses...), def)
	if err != nil {
		return "", err
	}
	if choice == noLicense {
		return "", nil
	}
	return choice, nil
}

// askPlugins runs the free-form multi-select over plugin kinds: one line of
// short codes, or the sentinel for none, each code invoking that kind's own
// interactive constructor.
func askPlugins(p ports.Prompter) ([]scaffold.Plugin, error) {
	kinds := scaffold.Kinds()
	codes := make([]string, 0, len(kinds))
	for _, k := range kinds {
		codes = append(codes, k.Code)
	}

	question := fmt.Sprintf("Plugins to enable (%s), or %q", strings.Join(codes, ", "), pluginsDone)
	answer, err := p.Input(question, pluginsDone)
	if err != nil {
		return nil, err
	}

	var plugins []scaffold.Plugin
	for _, code := range strings.FieldsFunc(answer, func(r rune) bool { return r == ' ' || r == ',' }) {
		if code == pluginsDone {
			break
		}
		kind, ok := scaffold.KindByCode(code)
		if !ok {
			return nil, fmt.Errorf("unknown plugin code %q", code)
		}
		plugin, err := kind.Interactive(p)
		if err != nil {
			return nil, err
		}
		plugins = append(plugins, plugin)
	}
	return plugins, nil
}
