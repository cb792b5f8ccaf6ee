package scaffold

import (
	"fmt"
	"os"

	"github.com/pkgsmith/pkgsmith/internal/core/ports"
)

func coverageGitignore() []string {
	return []string{"*.jl.cov", "*.jl.*.cov", "*.jl.mem"}
}

// Codecov enables Codecov coverage reporting: a badge, coverage-artifact
// ignore entries, and optionally a .codecov.yml copied from a local config
// file.
type Codecov struct {
	configFile string
}

// NewCodecov constructs a Codecov plugin. configFile may be empty; when set
// it must exist and is copied into the package as .codecov.yml.
func NewCodecov(configFile string) (Codecov, error) {
	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return Codecov{}, fmt.Errorf("codecov config file %q: %w", configFile, err)
		}
	}
	return Codecov{configFile: configFile}, nil
}

// Name implements Plugin.
func (Codecov) Name() string { return KindCodecov }

// GitignoreEntries implements Plugin.
func (Codecov) GitignoreEntries() []string { return coverageGitignore() }

// Badges implements Plugin.
func (Codecov) Badges(user, pkgName string) []Badge {
	return []Badge{{
		Hover: "Codecov",
		Image: fmt.Sprintf("https://codecov.io/gh/%s/%s/branch/master/graph/badge.svg", user, pkgName),
		Link:  fmt.Sprintf("https://codecov.io/gh/%s/%s", user, pkgName),
	}}
}

// Generate implements Plugin.
func (c Codecov) Generate(t *Template, pkgDir, pkgName string) ([]string, error) {
	if c.configFile == "" {
		return nil, nil
	}
	if err := copyFile(c.configFile, pkgDir+"/.codecov.yml"); err != nil {
		return nil, err
	}
	return []string{".codecov.yml"}, nil
}

// String implements Plugin.
func (c Codecov) String() string {
	return fmt.Sprintf("Codecov(config=%q)", c.configFile)
}

// ConfigFile returns the configured .codecov.yml source path, empty when
// none.
func (c Codecov) ConfigFile() string { return c.configFile }

// Coveralls enables Coveralls coverage reporting, mirroring Codecov.
type Coveralls struct {
	configFile string
}

// NewCoveralls constructs a Coveralls plugin. configFile may be empty; when
// set it must exist and is copied into the package as .coveralls.yml.
func NewCoveralls(configFile string) (Coveralls, error) {
	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return Coveralls{}, fmt.Errorf("coveralls config file %q: %w", configFile, err)
		}
	}
	return Coveralls{configFile: configFile}, nil
}

// Name implements Plugin.
func (Coveralls) Name() string { return KindCoveralls }

// GitignoreEntries implements Plugin.
func (Coveralls) GitignoreEntries() []string { return coverageGitignore() }

// Badges implements Plugin.
func (Coveralls) Badges(user, pkgName string) []Badge {
	return []Badge{{
		Hover: "Coveralls",
		Image: fmt.Sprintf("https://coveralls.io/repos/github/%s/%s/badge.svg?branch=master", user, pkgName),
		Link:  fmt.Sprintf("https://coveralls.io/github/%s/%s?branch=master", user, pkgName),
	}}
}

// Generate implements Plugin.
func (c Coveralls) Generate(t *Template, pkgDir, pkgName string) ([]string, error) {
	if c.configFile == "" {
		return nil, nil
	}
	if err := copyFile(c.configFile, pkgDir+"/.coveralls.yml"); err != nil {
		return nil, err
	}
	return []string{".coveralls.yml"}, nil
}

// String implements Plugin.
func (c Coveralls) String() string {
	return fmt.Sprintf("Coveralls(config=%q)", c.configFile)
}

// ConfigFile returns the configured .coveralls.yml source path, empty when
// none.
func (c Coveralls) ConfigFile() string { return c.configFile }

func buildCodecov(p ports.Prompter) (Plugin, error) {
	path, err := p.Input("Codecov config file path (empty for none)", "")
	if err != nil {
		return nil, err
	}
	return NewCodecov(path)
}

func buildCoveralls(p ports.Prompter) (Plugin, error) {
	path, err := p.Input("Coveralls config file path (empty for none)", "")
	if err != nil {
		return nil, err
	}
	return NewCoveralls(path)
}
