package models

import "strings"

// Slugify derives the dashed identifier used for lookups: lowercase, runs of
// whitespace collapsed to a single hyphen, everything outside [a-z0-9-]
// stripped, hyphen runs collapsed. "Acme Tools & Co." -> "acme-tools-co".
// The derivation is idempotent.
func Slugify(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	hyphenated := strings.Join(strings.Fields(lowered), "-")

	var b strings.Builder
	b.Grow(len(hyphenated))
	var lastHyphen bool
	for _, r := range hyphenated {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		case r == '-':
			if !lastHyphen && b.Len() > 0 {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
