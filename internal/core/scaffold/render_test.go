package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_MissingKeysAreFalsy(t *testing.T) {
	tests := []struct {
		name     string
		template string
		view     map[string]interface{}
		expected string
	}{
		{
			name:     "MissingInterpolationRendersEmpty",
			template: "before {{ABSENT}} after",
			view:     map[string]interface{}{},
			expected: "before  after",
		},
		{
			name:     "MissingSectionIsOmitted",
			template: "a{{#ABSENT}}hidden{{/ABSENT}}b",
			view:     map[string]interface{}{},
			expected: "ab",
		},
		{
			name:     "FalseSectionIsOmitted",
			template: "a{{#FLAG}}hidden{{/FLAG}}b",
			view:     map[string]interface{}{"FLAG": false},
			expected: "ab",
		},
		{
			name:     "TrueSectionIsRendered",
			template: "a{{#FLAG}}shown{{/FLAG}}b",
			view:     map[string]interface{}{"FLAG": true},
			expected: "ashownb",
		},
		{
			name:     "NestedLoopOverKeyValuePairs",
			template: "{{#PAIRS}}{{KEY}}={{VALUE}};{{/PAIRS}}",
			view: map[string]interface{}{
				"PAIRS": []map[string]interface{}{
					{"KEY": "a", "VALUE": "1"},
					{"KEY": "b", "VALUE": "2"},
				},
			},
			expected: "a=1;b=2;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered, err := Render(tt.template, tt.view)
			require.NoError(t, err, "rendering should tolerate the view")
			assert.Equal(t, tt.expected, rendered)
		})
	}
}

func TestRenderFor_BaselineView(t *testing.T) {
	tmpl, err := New(
		WithUser("jane"),
		WithJuliaVersion("1.6"),
		WithPlugins(mustDocumenter(t), Codecov{}),
	)
	require.NoError(t, err)

	rendered, err := tmpl.RenderFor(
		"{{USER}}/{{VERSION}}{{#DOCUMENTER}} docs{{/DOCUMENTER}}{{#COVERAGE}} cov{{/COVERAGE}}{{#AFTER}} after{{/AFTER}}",
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, "jane/1.6 docs cov after", rendered)
}

func TestRenderFor_CoverageFlagIncludesDeclaringCI(t *testing.T) {
	tests := []struct {
		name     string
		plugins  []Plugin
		expected string
	}{
		{
			name:     "NoCoveragePlugins",
			plugins:  []Plugin{TravisCI{}},
			expected: "no",
		},
		{
			name:     "CodecovEnablesCoverage",
			plugins:  []Plugin{Codecov{}},
			expected: "yes",
		},
		{
			name:     "CoverallsEnablesCoverage",
			plugins:  []Plugin{Coveralls{}},
			expected: "yes",
		},
		{
			name:     "GitLabCIWithCoverageEnablesCoverage",
			plugins:  []Plugin{GitLabCI{Coverage: true}},
			expected: "yes",
		},
		{
			name:     "GitLabCIWithoutCoverageDoesNot",
			plugins:  []Plugin{GitLabCI{}},
			expected: "no",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := New(WithUser("jane"), WithPlugins(tt.plugins...))
			require.NoError(t, err)

			rendered, err := tmpl.RenderFor("{{^COVERAGE}}no{{/COVERAGE}}{{#COVERAGE}}yes{{/COVERAGE}}", nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rendered)
		})
	}
}

func TestRenderFor_ExtraViewWinsOnConflict(t *testing.T) {
	tmpl, err := New(WithUser("jane"))
	require.NoError(t, err)

	rendered, err := tmpl.RenderFor("{{USER}}", map[string]interface{}{"USER": "override"})
	require.NoError(t, err)
	assert.Equal(t, "override", rendered, "caller-supplied keys must win over the baseline view")
}

func mustDocumenter(t *testing.T) Documenter {
	t.Helper()
	d, err := NewDocumenter(nil)
	require.NoError(t, err)
	return d
}
