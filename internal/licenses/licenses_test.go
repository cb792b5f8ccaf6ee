package licenses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodes_KnownSet(t *testing.T) {
	codes := Codes()
	assert.Contains(t, codes, "MIT")
	assert.Contains(t, codes, "ISC")
	assert.Contains(t, codes, "BSD-3-Clause")
	assert.IsIncreasing(t, codes, "codes are sorted")
}

func TestResolve(t *testing.T) {
	text, err := Resolve("MIT")
	require.NoError(t, err)
	assert.Contains(t, text, "MIT License")

	_, err = Resolve("GPL-99")
	require.Error(t, err)
	assert.ErrorAs(t, err, &ErrUnknown{})
}

func TestRender_FillsYearAndAuthors(t *testing.T) {
	text, err := Render("MIT", "Jane Doe & Co", 2026)
	require.NoError(t, err)
	assert.Contains(t, text, "Copyright (c) 2026 Jane Doe & Co")
	assert.NotContains(t, text, "{{", "no placeholders survive rendering")
}
