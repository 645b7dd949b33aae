package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Fold lowercases a string and strips diacritics so provider labels written
// with or without accents compare equal ("Previsão" == "previsao").
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(strings.ToLower(s)) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FoldJoin folds the non-empty parts and joins them with single spaces,
// producing the searchable text consumed by the alerting hook.
func FoldJoin(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		kept = append(kept, Fold(part))
	}
	return strings.Join(kept, " ")
}
