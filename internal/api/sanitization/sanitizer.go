package sanitization

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	policyOnce   sync.Once
	spaceRegex   = regexp.MustCompile(`\s+`)
)

// StripMarkup removes all HTML from input and escapes what is left so the
// result is safe to embed in an HTML document.
func StripMarkup(input string) string {
	policyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy.Sanitize(input)
}

// SanitizeString strips markup, collapses runs of whitespace and trims
func SanitizeString(input string) string {
	safe := StripMarkup(input)
	safe = spaceRegex.ReplaceAllString(safe, " ")
	return strings.TrimSpace(safe)
}
