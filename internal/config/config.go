// Package config persists reusable template configuration as YAML, so a
// template assembled once (interactively or by hand) can drive many
// generations.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pkgsmith/pkgsmith/internal/core/scaffold"
	"github.com/pkgsmith/pkgsmith/internal/interactive"
)

// File is the on-disk template representation. Absent fields fall back to
// the standard defaults (or to interactive questions).
type File struct {
	User         *string      `yaml:"user,omitempty"`
	Host         *string      `yaml:"host,omitempty"`
	License      *string      `yaml:"license,omitempty"`
	Authors      *string      `yaml:"authors,omitempty"`
	Dir          *string      `yaml:"dir,omitempty"`
	JuliaVersion *string      `yaml:"julia_version,omitempty"`
	SSH          *bool        `yaml:"ssh,omitempty"`
	Manifest     *bool        `yaml:"manifest,omitempty"`
	Plugins      []PluginSpec `yaml:"plugins,omitempty"`
}

// PluginSpec is one plugin entry in a template file.
type PluginSpec struct {
	Kind string `yaml:"kind"`
	// Coverage applies to GitLabCI.
	Coverage bool `yaml:"coverage,omitempty"`
	// Config applies to Codecov and Coveralls.
	Config string `yaml:"config,omitempty"`
	// Assets and Extra apply to Documenter.
	Assets []string    `yaml:"assets,omitempty"`
	Extra  []ExtraPair `yaml:"extra,omitempty"`
}

// ExtraPair is an ordered makedocs key/value option.
type ExtraPair struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Load reads a template file and converts it into a builder seed.
func Load(path string) (interactive.Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return interactive.Seed{}, err
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return interactive.Seed{}, fmt.Errorf("parse template file %s: %w", path, err)
	}
	return f.Seed()
}

// Seed converts the file into a builder seed, constructing plugin instances
// from their specs.
func (f File) Seed() (interactive.Seed, error) {
	seed := interactive.Seed{
		User:         f.User,
		Host:         f.Host,
		License:      f.License,
		Authors:      f.Authors,
		Dir:          f.Dir,
		JuliaVersion: f.JuliaVersion,
		SSH:          f.SSH,
		Manifest:     f.Manifest,
	}
	if f.Plugins == nil {
		return seed, nil
	}

	seed.Plugins = make([]scaffold.Plugin, 0, len(f.Plugins))
	for _, spec := range f.Plugins {
		p, err := spec.Plugin()
		if err != nil {
			return interactive.Seed{}, err
		}
		seed.Plugins = append(seed.Plugins, p)
	}
	return seed, nil
}

// Plugin constructs the plugin instance a spec describes.
func (s PluginSpec) Plugin() (scaffold.Plugin, error) {
	switch s.Kind {
	case scaffold.KindTravisCI:
		return scaffold.TravisCI{}, nil
	case scaffold.KindAppVeyor:
		return scaffold.AppVeyor{}, nil
	case scaffold.KindGitLabCI:
		return scaffold.GitLabCI{Coverage: s.Coverage}, nil
	case scaffold.KindCodecov:
		return scaffold.NewCodecov(s.Config)
	case scaffold.KindCoveralls:
		return scaffold.NewCoveralls(s.Config)
	case scaffold.KindDocumenter:
		extra := make([]scaffold.KV, 0, len(s.Extra))
		for _, e := range s.Extra {
			extra = append(extra, scaffold.KV{Key: e.Key, Value: e.Value})
		}
		return scaffold.NewDocumenter(s.Assets, extra...)
	case scaffold.KindGitHubPages:
		return scaffold.GitHubPages{}, nil
	default:
		return nil, fmt.Errorf("unknown plugin kind %q", s.Kind)
	}
}

// Save writes a Template back to a YAML file.
func Save(path string, t *scaffold.Template) error {
	raw, err := yaml.Marshal(fromTemplate(t))
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func fromTemplate(t *scaffold.Template) File {
	user, host := t.User(), t.Host()
	license, authors := t.License(), t.Authors()
	dir, version := t.Dir(), t.JuliaVersion()
	ssh, manifest := t.SSH(), t.Manifest()

	f := File{
		User:         &user,
		Host:         &host,
		License:      &license,
		Authors:      &authors,
		Dir:          &dir,
		JuliaVersion: &version,
		SSH:          &ssh,
		Manifest:     &manifest,
	}
	for _, p := range t.Plugins() {
		f.Plugins = append(f.Plugins, specFor(p))
	}
	return f
}

func specFor(p scaffold.Plugin) PluginSpec {
	spec := PluginSpec{Kind: p.Name()}
	switch v := p.(type) {
	case scaffold.GitLabCI:
		spec.Coverage = v.Coverage
	case scaffold.Codecov:
		spec.Config = v.ConfigFile()
	case scaffold.Coveralls:
		spec.Config = v.ConfigFile()
	case scaffold.Documenter:
		spec.Assets = v.Assets()
		for _, kv := range v.Extra() {
			spec.Extra = append(spec.Extra, ExtraPair{Key: kv.Key, Value: kv.Value})
		}
	}
	return spec
}
