package scaffold

import (
	"github.com/cbroglie/mustache"
)

// Render renders mustache template text against a view. Missing keys are
// tolerated: interpolations of absent keys render empty and sections keyed
// on absent or false values are omitted.
func Render(text string, view map[string]interface{}) (string, error) {
	return mustache.Render(text, view)
}

// RenderFor renders template text against the baseline view derived from
// the Template, with extra merged on top (extra wins on conflict).
//
// The baseline view exposes USER and VERSION plus boolean flags for each
// relevant plugin kind: DOCUMENTER, CODECOV, COVERALLS, GITLABCI, the
// unified COVERAGE flag (any coverage plugin, or any CI plugin whose own
// configuration declares coverage support) and AFTER (documentation or
// coverage work needed after the build stage).
func (t *Template) RenderFor(text string, extra map[string]interface{}) (string, error) {
	view := t.baseView()
	for k, v := range extra {
		view[k] = v
	}
	return Render(text, view)
}

func (t *Template) baseView() map[string]interface{} {
	docs := t.HasPlugin(KindDocumenter)
	codecov := t.HasPlugin(KindCodecov)
	coveralls := t.HasPlugin(KindCoveralls)

	coverage := codecov || coveralls
	for _, p := range t.Plugins() {
		if d, ok := p.(coverageDeclarer); ok && d.DeclaresCoverage() {
			coverage = true
		}
	}

	return map[string]interface{}{
		"USER":       t.user,
		"VERSION":    t.version,
		"DOCUMENTER": docs,
		"CODECOV":    codecov,
		"COVERALLS":  coveralls,
		"GITLABCI":   t.HasPlugin(KindGitLabCI),
		"COVERAGE":   coverage,
		"AFTER":      docs || coverage,
	}
}
