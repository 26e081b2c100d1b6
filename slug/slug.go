// Package slug derives URL-safe identifiers from attribute keys and keeps
// them unique within a set.
package slug

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is used when a key has no slug-able characters at all.
const Fallback = "attribute"

// Make lowercases s, strips diacritics, and collapses every run of
// characters outside [a-z0-9] into a single '-'. Leading and trailing dashes
// are trimmed.
//
//	Make("Design & User Research") == "design-user-research"
//	Make("Pays d'origine")          == "pays-d-origine"
//	Make("Élève")                   == "eleve"
func Make(s string) string {
	out, _ := derive(s)
	return out
}

// derive is Make that also reports whether s had slug-able characters.
func derive(s string) (string, bool) {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	dash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}

	if b.Len() == 0 {
		return Fallback, false
	}

	return b.String(), true
}

// Allocator hands out slugs that are unique within one set.
// The zero value is not usable; call NewAllocator.
type Allocator struct {
	taken map[string]struct{}
}

// NewAllocator returns an empty slug set.
func NewAllocator() *Allocator {
	return &Allocator{taken: make(map[string]struct{})}
}

// Allocate derives a slug from name and, on collision, appends an
// incrementing suffix to name ("name0", "name1", …) and re-derives until the
// slug is free. Names without slug-able characters get suffixed fallbacks
// instead ("attribute-0", "attribute-1", …). The result is reserved.
func (a *Allocator) Allocate(name string) string {
	s, ok := derive(name)
	for i := 0; a.Taken(s); i++ {
		if ok {
			s = Make(name + strconv.Itoa(i))
		} else {
			s = Fallback + "-" + strconv.Itoa(i)
		}
	}
	a.Reserve(s)

	return s
}

// Reserve marks s as used without deriving anything.
func (a *Allocator) Reserve(s string) { a.taken[s] = struct{}{} }

// Taken reports whether s is already used.
func (a *Allocator) Taken(s string) bool {
	_, ok := a.taken[s]
	return ok
}
