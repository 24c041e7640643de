// Package distance validates distance-with-unit tokens.
//
// A distance is a number immediately followed by a unit: "1pt", "0.5cm",
// "10mm", "2in", "72px", or "3%". Surrounding whitespace is tolerated.
package distance

import (
	"regexp"
	"strings"
)

var distRE = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?(pt|mm|cm|in|px|%)$`)

// IsValid reports whether text is a well-formed distance token.
func IsValid(text string) bool {
	return distRE.MatchString(strings.TrimSpace(text))
}
