// Package licenses holds the embedded license registry used when scaffolding
// a package. Texts carry {{YEAR}} and {{AUTHORS}} placeholders.
package licenses

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/cbroglie/mustache"
)

//go:embed data/*.txt
var texts embed.FS

// ErrUnknown reports an unresolvable license identifier.
type ErrUnknown struct {
	Code string
}

func (e ErrUnknown) Error() string {
	return fmt.Sprintf("unknown license %q (available: %s)", e.Code, strings.Join(Codes(), ", "))
}

// Codes returns the known license identifiers, sorted.
func Codes() []string {
	entries, err := texts.ReadDir("data")
	if err != nil {
		return nil
	}
	codes := make([]string, 0, len(entries))
	for _, e := range entries {
		codes = append(codes, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(codes)
	return codes
}

// Resolve returns the raw text for a license identifier.
func Resolve(code string) (string, error) {
	raw, err := texts.ReadFile("data/" + code + ".txt")
	if err != nil {
		return "", ErrUnknown{Code: code}
	}
	return string(raw), nil
}

// Render resolves a license and fills in the copyright year and authors.
func Render(code, authors string, year int) (string, error) {
	raw, err := Resolve(code)
	if err != nil {
		return "", err
	}
	return mustache.Render(raw, map[string]interface{}{
		"YEAR":    fmt.Sprintf("%d", year),
		"AUTHORS": authors,
	})
}
