package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkgsmith/pkgsmith/internal/config"
	"github.com/pkgsmith/pkgsmith/internal/core/scaffold"
	"github.com/pkgsmith/pkgsmith/internal/generate"
	"github.com/pkgsmith/pkgsmith/internal/infrastructure/gitrepo"
	"github.com/pkgsmith/pkgsmith/internal/infrastructure/pkgmgr"
	"github.com/pkgsmith/pkgsmith/internal/infrastructure/terminal"
	"github.com/pkgsmith/pkgsmith/internal/interactive"
)

type createFlags struct {
	user         string
	host         string
	license      string
	authors      string
	dir          string
	juliaVersion string
	ssh          bool
	manifest     bool
	plugins      []string

	templateFile string
	saveTemplate string
	interactive  bool
	fast         bool
	noGit        bool
	gitConfig    map[string]string
}

// newCreateCommand creates the create subcommand.
func newCreateCommand() *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create <PackageName>",
		Short: "Scaffold a new package",
		Long: `Create scaffolds a new package under the template's base directory.

Template fields come from flags, a YAML template file (--template), or the
interactive question sequence (--interactive). Flags always win: a field
supplied on the command line is never asked for. --fast skips every question
except the username and the plugin selection.

Example:
  pkgsmith create MyPkg --user jane --plugins travis,codecov
  pkgsmith create MyPkg --interactive --ssh
  pkgsmith create MyPkg --template ~/.config/pkgsmith/template.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.user, "user", "", "account name used in remote URLs and badges")
	cmd.Flags().StringVar(&flags.host, "host", scaffold.DefaultHost, "code hosting service")
	cmd.Flags().StringVar(&flags.license, "license", scaffold.DefaultLicense, "license identifier (empty for no license file)")
	cmd.Flags().StringVar(&flags.authors, "authors", "", "authors string for copyright attribution")
	cmd.Flags().StringVar(&flags.dir, "dir", "", "base directory for new packages")
	cmd.Flags().StringVar(&flags.juliaVersion, "julia-version", scaffold.DefaultJuliaVersion, "minimum supported Julia version")
	cmd.Flags().BoolVar(&flags.ssh, "ssh", false, "use ssh-form remote URLs")
	cmd.Flags().BoolVar(&flags.manifest, "manifest", false, "commit the Manifest.toml lockfile instead of ignoring it")
	cmd.Flags().StringSliceVar(&flags.plugins, "plugins", nil, "plugin codes to enable with default configuration")
	cmd.Flags().StringVar(&flags.templateFile, "template", "", "YAML template file to load")
	cmd.Flags().StringVar(&flags.saveTemplate, "save-template", "", "write the effective template to this YAML file")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "assemble the template interactively")
	cmd.Flags().BoolVar(&flags.fast, "fast", false, "interactive fast mode: ask only username and plugins")
	cmd.Flags().BoolVar(&flags.noGit, "no-git", false, "skip repository initialization and the initial commit")
	cmd.Flags().StringToStringVar(&flags.gitConfig, "git-config", nil, "repository config overrides, e.g. user.name='Jane Doe'")

	return cmd
}

func runCreate(cmd *cobra.Command, pkgName string, flags *createFlags) error {
	seed, err := assembleSeed(cmd, flags)
	if err != nil {
		return err
	}

	tmpl, err := buildTemplate(flags, seed)
	if err != nil {
		return err
	}

	if flags.saveTemplate != "" {
		if err := config.Save(flags.saveTemplate, tmpl); err != nil {
			return fmt.Errorf("save template: %w", err)
		}
	}

	pkg, err := pkgmgr.New("")
	if err != nil {
		return err
	}
	gen := generate.NewGenerator(gitrepo.New(), pkg, os.Stdout)

	err = gen.Generate(pkgName, tmpl,
		generate.WithRepo(!flags.noGit),
		generate.WithGitConfig(flags.gitConfig),
	)
	if err != nil {
		return err
	}

	fmt.Println(terminal.Success.Render(fmt.Sprintf("Package %s generated.", pkgName)))
	return nil
}

// assembleSeed merges the template file (if any) with explicitly supplied
// flags; flags win, and a supplied field is never asked for interactively.
func assembleSeed(cmd *cobra.Command, flags *createFlags) (interactive.Seed, error) {
	var seed interactive.Seed
	if flags.templateFile != "" {
		loaded, err := config.Load(flags.templateFile)
		if err != nil {
			return interactive.Seed{}, fmt.Errorf("load template: %w", err)
		}
		seed = loaded
	}

	changed := cmd.Flags().Changed
	if changed("user") {
		seed.User = &flags.user
	}
	if changed("host") {
		seed.Host = &flags.host
	}
	if changed("license") {
		seed.License = &flags.license
	}
	if changed("authors") {
		seed.Authors = &flags.authors
	}
	if changed("dir") {
		seed.Dir = &flags.dir
	}
	if changed("julia-version") {
		seed.JuliaVersion = &flags.juliaVersion
	}
	if changed("ssh") {
		seed.SSH = &flags.ssh
	}
	if changed("manifest") {
		seed.Manifest = &flags.manifest
	}
	if changed("plugins") {
		plugins, err := defaultPlugins(flags.plugins)
		if err != nil {
			return interactive.Seed{}, err
		}
		seed.Plugins = plugins
	}
	return seed, nil
}

func buildTemplate(flags *createFlags, seed interactive.Seed) (*scaffold.Template, error) {
	if flags.interactive || flags.fast {
		prompter := terminal.NewPrompter()
		return interactive.Build(prompter, interactive.DefaultConfig(), seed, flags.fast)
	}
	return scaffold.New(seed.Options()...)
}

// defaultPlugins resolves plugin codes from --plugins into instances with
// default configuration.
func defaultPlugins(codes []string) ([]scaffold.Plugin, error) {
	plugins := make([]scaffold.Plugin, 0, len(codes))
	for _, code := range codes {
		kind, ok := scaffold.KindByCode(strings.TrimSpace(code))
		if !ok {
			return nil, fmt.Errorf("unknown plugin code %q", code)
		}
		plugins = append(plugins, kind.Default())
	}
	return plugins, nil
}
