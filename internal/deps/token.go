// Package deps resolves the framework version token and builds the ordered
// dependency set handed to the package installer.
package deps

import "strings"

// LatestMarker is the user-facing marker meaning "do not pin".
const LatestMarker = "latest"

// Token is a resolved version token.
//
// The zero value is an absent token; Resolve always returns a present one,
// including for empty input.
type Token struct {
	value    string
	latest   bool
	resolved bool
}

// Resolve normalizes raw user input into a Token. Input equal to "latest"
// in any case becomes the unqualified token; anything else is kept verbatim.
func Resolve(raw string) Token {
	if strings.EqualFold(raw, LatestMarker) {
		return Token{value: LatestMarker, latest: true, resolved: true}
	}
	return Token{value: raw, resolved: true}
}

// IsZero reports whether the token was never resolved.
func (t Token) IsZero() bool {
	return !t.resolved
}

// IsLatest reports whether the token is the unqualified marker.
func (t Token) IsLatest() bool {
	return t.latest
}

// String returns the canonical token value.
func (t Token) String() string {
	return t.value
}
