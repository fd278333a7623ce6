package lingua

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns s in Unicode NFC. Tables are stored composed, so a
// decomposed "é" (e + U+0301) must be composed before matching.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// normalizeWord prepares a single word for morphology.
func normalizeWord(s string) string {
	return Normalize(strings.TrimSpace(s))
}

// unescapeReplacer decodes the escapes allowed in data file fields, where
// leading and trailing blanks would otherwise be trimmed away.
var unescapeReplacer = strings.NewReplacer(
	`\s`, " ",
	`\t`, "\t",
	`\c`, ":",
	`\\`, `\`,
)

// unescape decodes a data file field.
func unescape(s string) string {
	return Normalize(unescapeReplacer.Replace(s))
}

// applyNorms runs every normalization alternative over s in order.
func applyNorms(alts []alternative, s string) string {
	for _, a := range alts {
		s = a.replace(s)
	}
	return s
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
