package chunk

import "regexp"

// paragraphBreak matches a blank-line boundary: a newline, optional
// horizontal whitespace, and another newline.
var paragraphBreak = regexp.MustCompile(`\n[ \t\r]*\n`)

// splitParagraphs splits text on blank-line boundaries, trims each piece
// and drops empties. No size enforcement happens here.
func splitParagraphs(text string) []segment {
	breaks := paragraphBreak.FindAllStringIndex(text, -1)

	paragraphs := make([]segment, 0, len(breaks)+1)
	start := 0
	for _, b := range breaks {
		if seg, ok := newSegment(text, start, b[0]); ok {
			paragraphs = append(paragraphs, seg)
		}
		start = b[1]
	}
	if seg, ok := newSegment(text, start, len(text)); ok {
		paragraphs = append(paragraphs, seg)
	}

	return paragraphs
}
