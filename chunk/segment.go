package chunk

import (
	"unicode"
	"unicode/utf8"
)

// segment is an intermediate unit (paragraph, sentence, or sub-sentence
// piece) flowing between pipeline stages. Start and End are byte offsets
// into the source text; text is the trimmed slice source[start:end].
type segment struct {
	text  string
	start int
	end   int
}

// size returns the segment length in runes.
func (s segment) size() int {
	return utf8.RuneCountInString(s.text)
}

// newSegment trims whitespace from source[start:end] and returns the
// resulting segment with offsets adjusted to the trimmed content.
// ok is false when the slice is empty or whitespace-only.
func newSegment(source string, start, end int) (seg segment, ok bool) {
	for start < end {
		r, size := utf8.DecodeRuneInString(source[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}
	for end > start {
		r, size := utf8.DecodeLastRuneInString(source[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	if start >= end {
		return segment{}, false
	}
	return segment{text: source[start:end], start: start, end: end}, true
}
