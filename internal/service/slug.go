package service

import "strings"

// Slugify derives a URL-safe identifier from a title: lowercase, every
// maximal run of characters outside [a-z0-9] collapsed to a single hyphen,
// leading and trailing hyphens stripped. The operation is idempotent.
//
// No uniqueness suffix is applied. Two titles that normalize identically
// produce the same slug, and the slug lookup then returns a single row
// (first match wins). See GetArticleBySlug.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}
