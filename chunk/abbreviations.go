package chunk

// abbreviations maps lowercase tokens (trailing period stripped) that
// must not terminate a sentence. Covers English titles, generic business
// abbreviations, measurement units, reference markers, Romance-language
// honorifics, German articles and time markers. Process-wide, read-only.
var abbreviations = map[string]bool{
	// English titles
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true,

	// Generic
	"vs": true, "etc": true, "inc": true, "ltd": true, "co": true, "corp": true,

	// Units
	"ft": true, "in": true, "lb": true, "oz": true, "pt": true, "qt": true,
	"gal": true, "mi": true, "km": true, "kg": true, "mg": true, "ml": true,

	// References
	"no": true, "vol": true, "ch": true, "pg": true, "pp": true,
	"ed": true, "rev": true,

	// Romance-language honorifics
	"sra": true, "srta": true, "dn": true, "dna": true, "dra": true,

	// German articles
	"hr": true, "fr": true,

	// Time markers
	"a.m": true, "p.m": true, "am": true, "pm": true,
}

// isAbbreviation reports whether word, with any trailing period already
// part of it or not, is a known non-terminating abbreviation. The word
// is matched case-insensitively with trailing periods stripped, so
// "Dr.", "dr" and "A.M." all match.
func isAbbreviation(word string) bool {
	if word == "" {
		return false
	}
	for len(word) > 0 && word[len(word)-1] == '.' {
		word = word[:len(word)-1]
	}
	if word == "" {
		return false
	}
	return abbreviations[lowerASCII(word)]
}

// lowerASCII lowercases ASCII letters without allocating for strings
// that are already lowercase. Abbreviation tokens are ASCII.
func lowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}
