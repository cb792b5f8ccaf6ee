package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkgsmith/pkgsmith/internal/core/ports"
)

// makedocs keywords owned by the generated make.jl; extra options may not
// collide with them.
var reservedMakedocsKeywords = map[string]bool{
	"modules":  true,
	"format":   true,
	"pages":    true,
	"repo":     true,
	"sitename": true,
	"authors":  true,
	"assets":   true,
}

// KV is an ordered key/value pair passed through to makedocs.
type KV struct {
	Key   string
	Value string
}

// Documenter sets up a Documenter.jl documentation tree: docs/make.jl, an
// index page, and any extra asset files copied into the docs source.
type Documenter struct {
	assets []string
	extra  []KV
}

// NewDocumenter constructs a Documenter plugin. Every asset path must exist
// and extra keys must not collide with the makedocs keywords the generated
// build script owns.
func NewDocumenter(assets []string, extra ...KV) (Documenter, error) {
	for _, a := range assets {
		if _, err := os.Stat(a); err != nil {
			return Documenter{}, fmt.Errorf("documenter asset %q: %w", a, err)
		}
	}
	for _, kv := range extra {
		if reservedMakedocsKeywords[kv.Key] {
			return Documenter{}, fmt.Errorf("documenter option %q collides with a reserved makedocs keyword", kv.Key)
		}
	}
	return Documenter{assets: assets, extra: extra}, nil
}

// Name implements Plugin.
func (Documenter) Name() string { return KindDocumenter }

// GitignoreEntries implements Plugin.
func (Documenter) GitignoreEntries() []string {
	return []string{"/docs/build/", "/docs/site/"}
}

// Badges implements Plugin.
func (Documenter) Badges(user, pkgName string) []Badge {
	base := fmt.Sprintf("https://%s.github.io/%s", user, pkgName)
	return []Badge{
		{
			Hover: "Stable",
			Image: "https://img.shields.io/badge/docs-stable-blue.svg",
			Link:  base + "/stable",
		},
		{
			Hover: "Dev",
			Image: "https://img.shields.io/badge/docs-dev-blue.svg",
			Link:  base + "/dev",
		},
	}
}

// Generate implements Plugin. It writes docs/make.jl and docs/src/index.md
// and copies the configured assets into docs/src/assets.
func (d Documenter) Generate(t *Template, pkgDir, pkgName string) ([]string, error) {
	assetNames := make([]string, 0, len(d.assets))
	for _, a := range d.assets {
		assetNames = append(assetNames, fmt.Sprintf("%q", filepath.Base(a)))
	}
	extraView := make([]map[string]interface{}, 0, len(d.extra))
	for _, kv := range d.extra {
		extraView = append(extraView, map[string]interface{}{
			"KEY":   kv.Key,
			"VALUE": kv.Value,
		})
	}

	makejl, err := renderPluginTemplate(t, "make.jl", map[string]interface{}{
		"PKG":     pkgName,
		"HOST":    t.Host(),
		"AUTHORS": t.Authors(),
		"ASSETS":  "[" + strings.Join(assetNames, ", ") + "]",
		"EXTRA":   extraView,
		"PAGES":   t.HasPlugin(KindGitHubPages),
	})
	if err != nil {
		return nil, err
	}
	if _, err := writeGenerated(pkgDir, filepath.Join("docs", "make.jl"), makejl); err != nil {
		return nil, err
	}

	index, err := renderPluginTemplate(t, "index.md", map[string]interface{}{"PKG": pkgName})
	if err != nil {
		return nil, err
	}
	if _, err := writeGenerated(pkgDir, filepath.Join("docs", "src", "index.md"), index); err != nil {
		return nil, err
	}

	for _, a := range d.assets {
		dst := filepath.Join(pkgDir, "docs", "src", "assets", filepath.Base(a))
		if err := copyFile(a, dst); err != nil {
			return nil, fmt.Errorf("copy documenter asset %q: %w", a, err)
		}
	}

	return []string{"docs/"}, nil
}

// String implements Plugin.
func (d Documenter) String() string {
	return fmt.Sprintf("Documenter(assets=%d, extra=%d)", len(d.assets), len(d.extra))
}

// Assets returns the configured asset file paths.
func (d Documenter) Assets() []string {
	return append([]string(nil), d.assets...)
}

// Extra returns the extra makedocs options.
func (d Documenter) Extra() []KV {
	return append([]KV(nil), d.extra...)
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}

func buildDocumenter(p ports.Prompter) (Plugin, error) {
	rawAssets, err := p.Input("Asset file paths to include (comma-separated, empty for none)", "")
	if err != nil {
		return nil, err
	}
	rawExtra, err := p.Input("Extra makedocs key=value pairs (comma-separated, empty for none)", "")
	if err != nil {
		return nil, err
	}

	assets := splitList(rawAssets)
	var extra []KV
	for _, pair := range splitList(rawExtra) {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed key=value pair %q", pair)
		}
		extra = append(extra, KV{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)})
	}
	return NewDocumenter(assets, extra...)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
