package feed

import (
	"strings"
	"unicode"
)

// fingerprintLen bounds the normalized-text prefix used as the
// content identity of an item.
const fingerprintLen = 100

// Deduper tracks content fingerprints and canonical links for one
// feed session. Both sets only ever grow; the session registry resets
// them when the category selection changes.
type Deduper struct {
	fingerprints map[string]struct{}
	links        map[string]struct{}
}

func NewDeduper() *Deduper {
	return &Deduper{
		fingerprints: make(map[string]struct{}),
		links:        make(map[string]struct{}),
	}
}

// Admit reports whether the item is new. An admitted item's
// fingerprint and canonical link are registered immediately, so
// duplicates inside the same batch are caught as well.
func (d *Deduper) Admit(item Item) bool {
	fingerprint := Fingerprint(item.Title, item.Description)
	link := canonicalLink(item.Link)

	if _, dup := d.fingerprints[fingerprint]; dup {
		return false
	}
	if _, dup := d.links[link]; dup {
		return false
	}

	d.fingerprints[fingerprint] = struct{}{}
	d.links[link] = struct{}{}
	return true
}

// Size returns the number of admitted items so far.
func (d *Deduper) Size() int {
	return len(d.fingerprints)
}

// Fingerprint derives the normalized content identity of an item:
// lowercased title+description with punctuation removed and
// whitespace collapsed, truncated to a fixed prefix.
func Fingerprint(title, description string) string {
	normalized := normalizeText(title + " " + description)

	runes := []rune(normalized)
	if len(runes) > fingerprintLen {
		runes = runes[:fingerprintLen]
	}
	return string(runes)
}

func canonicalLink(link string) string {
	if i := strings.IndexByte(link, '?'); i >= 0 {
		return link[:i]
	}
	return link
}

func normalizeText(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(b.String(), " "))
}
