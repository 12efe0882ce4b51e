package chunk

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// lookaheadWindow is how many characters past a candidate boundary the
// scanner inspects for an uppercase letter or opening punctuation before
// confirming a sentence break.
const lookaheadWindow = 9

// splitSentences scans src left to right and splits it into sentences at
// terminal punctuation (. ! ?). The scan approximates sentence
// boundaries across English, Portuguese, Spanish, French and German
// narration, specifically defeating the three classic failure modes of
// naive period splitting: abbreviations, decimal numbers and ellipses.
//
// Decision order at each candidate, matching the scan position:
//  1. An ellipsis (three or more dots) never terminates.
//  2. A closing quote immediately after the punctuation is absorbed
//     into the sentence before deciding.
//  3. A period whose preceding token is a known abbreviation is
//     suppressed.
//  4. A period between two digits (a decimal point) is suppressed.
//  5. Otherwise the boundary is confirmed when input is exhausted, the
//     next character is a newline, or the lookahead window opens with
//     an uppercase letter, opening quote or bracket.
func splitSentences(src segment) []segment {
	text := src.text
	sentences := make([]segment, 0, len(text)/80+1)

	sentStart := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r != '.' && r != '!' && r != '?' {
			i += size
			continue
		}

		// Ellipsis: absorb the whole dot run as non-terminating.
		if r == '.' && i+2 < len(text) && text[i+1] == '.' && text[i+2] == '.' {
			j := i
			for j < len(text) && text[j] == '.' {
				j++
			}
			i = j
			continue
		}

		end := i + size

		// Absorb a trailing closing quote before deciding.
		if end < len(text) {
			q, qs := utf8.DecodeRuneInString(text[end:])
			if isClosingQuote(q) {
				end += qs
			}
		}

		if r == '.' {
			// Abbreviation suppression: the last whitespace-delimited
			// token of the sentence so far, period included.
			if isAbbreviation(lastToken(text[sentStart : i+size])) {
				i = end
				continue
			}

			// Decimal suppression: digit on both sides of the period.
			if digitBefore(text, i) && digitAfter(text, i+size) {
				i = end
				continue
			}
		}

		if confirmsBoundary(text[end:]) {
			if seg, ok := newSegment(text, sentStart, end); ok {
				seg.start += src.start
				seg.end += src.start
				sentences = append(sentences, seg)
			}
			sentStart = end
		}
		i = end
	}

	// Flush whatever remains as the final sentence.
	if seg, ok := newSegment(text, sentStart, len(text)); ok {
		seg.start += src.start
		seg.end += src.start
		sentences = append(sentences, seg)
	}

	return sentences
}

// confirmsBoundary reports whether the text following a candidate
// boundary allows the break: end of input, an immediate newline, or a
// lookahead window opening with an uppercase letter, opening quote or
// bracket.
func confirmsBoundary(rest string) bool {
	if rest == "" {
		return true
	}
	if rest[0] == '\n' {
		return true
	}

	window := rest
	if n := byteLenOfRunes(rest, lookaheadWindow); n < len(window) {
		window = window[:n]
	}
	window = strings.TrimLeft(window, " \t\r\n")
	if window == "" {
		return false
	}

	first, _ := utf8.DecodeRuneInString(window)
	return unicode.IsUpper(first) || isOpeningPunct(first)
}

// byteLenOfRunes returns the byte length of the first n runes of s, or
// len(s) when s is shorter.
func byteLenOfRunes(s string, n int) int {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

// lastToken returns the last whitespace-delimited token of s.
func lastToken(s string) string {
	end := len(s)
	i := end
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if unicode.IsSpace(r) {
			break
		}
		i -= size
	}
	return s[i:end]
}

// digitBefore reports whether the rune ending at byte position pos is a
// digit.
func digitBefore(s string, pos int) bool {
	if pos <= 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:pos])
	return unicode.IsDigit(r)
}

// digitAfter reports whether the rune starting at byte position pos is a
// digit.
func digitAfter(s string, pos int) bool {
	if pos >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return unicode.IsDigit(r)
}

// isClosingQuote reports whether r is a straight or curly closing quote.
func isClosingQuote(r rune) bool {
	switch r {
	case '"', '\'', '”', '’': // " ' ” ’
		return true
	}
	return false
}

// isOpeningPunct reports whether r opens a quotation or bracketed
// passage, including the inverted marks used in Spanish narration.
func isOpeningPunct(r rune) bool {
	switch r {
	case '"', '\'', '“', '‘', '«', '(', '[', '¿', '¡': // " ' “ ‘ « ( [ ¿ ¡
		return true
	}
	return false
}
