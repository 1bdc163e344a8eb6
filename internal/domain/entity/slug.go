package entity

import "strings"

// Slugify lower-cases s, collapses every run of characters outside [a-z0-9]
// into a single '-' and trims leading and trailing dashes.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingDash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)

			continue
		}
		pendingDash = true
	}

	return b.String()
}
