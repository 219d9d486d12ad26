package normalization

import "strings"

// UnknownIdentifier is returned for input that has no usable characters.
const UnknownIdentifier = "unknown"

// Sanitize derives a structural identifier from free text: lower-case,
// every rune outside [a-z0-9_] replaced by '_', runs of '_' collapsed and
// outer '_' trimmed. It is never used for display names.
func Sanitize(name string) string {
	if name == "" {
		return UnknownIdentifier
	}
	var b strings.Builder
	b.Grow(len(name))
	lastUnderscore := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	out := strings.Trim(b.String(), "_")
	if out == "" {
		return UnknownIdentifier
	}
	return out
}

// TrimName is the only normalization applied to node names.
func TrimName(name string) string {
	return strings.TrimSpace(name)
}
