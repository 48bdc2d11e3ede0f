package keys

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// sanitizeKey lowercases s and replaces anything that is not a letter or
// digit with a hyphen, collapsing runs.
func sanitizeKey(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Export returns the object key of a map export taken at t.
func Export(title string, t time.Time) string {
	return fmt.Sprintf("exports/%s/%s.html", sanitizeKey(title), t.UTC().Format("20060102-150405"))
}

// Latest returns the key that always holds the newest export of title.
func Latest(title string) string {
	return fmt.Sprintf("exports/%s/latest.html", sanitizeKey(title))
}
