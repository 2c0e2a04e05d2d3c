package proxy

import (
	"strings"
	"unicode"
)

// normalizeOperation maps an operation name onto its canonical snake_case
// form, preserving a trailing assignment marker. "FullName", "fullName" and
// "full_name" all resolve to the same operation and share one cache
// identity.
func normalizeOperation(name string) string {
	assign := strings.HasSuffix(name, AssignmentMarker)
	if assign {
		name = strings.TrimSuffix(name, AssignmentMarker)
	}
	name = toSnake(name)
	if assign {
		name += AssignmentMarker
	}
	return name
}

// toSnake converts the provided string to snake_case using ASCII-aware
// rules. Punctuation collapses to single underscores so reflected names and
// caller-supplied spellings end up in the same namespace.
func toSnake(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(runes) + len(runes)/2)

	lastUnderscore := false

	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if b.Len() > 0 && !lastUnderscore {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || nextLower {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			lastUnderscore = false

		case unicode.IsLower(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastUnderscore = false

		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}

	return strings.Trim(b.String(), "_")
}
