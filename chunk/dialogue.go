package chunk

import (
	"strings"
	"unicode/utf8"
)

// quoteState tracks open quotations across segments. Curly quotes nest
// with a depth counter; the straight double quote opens and closes with
// the same character, so it can only be tracked as parity.
type quoteState struct {
	depth    int
	straight bool
}

// observe updates the state with the quotes found in text.
func (q *quoteState) observe(text string) {
	for _, r := range text {
		switch r {
		case '“':
			q.depth++
		case '”':
			if q.depth > 0 {
				q.depth--
			}
		case '"':
			q.straight = !q.straight
		}
	}
}

// open reports whether a quotation is currently unclosed.
func (q *quoteState) open() bool {
	return q.depth > 0 || q.straight
}

// mergeDialogue re-merges consecutive segments so that a quotation
// opened in one segment stays in the same unit as its close. A merged
// unit that would exceed maxSize is abandoned: its segments are
// re-split at sentence terminals and emitted individually, sacrificing
// dialogue cohesion to respect the size bound. A quotation left open at
// end of input flushes under the same size rule.
func mergeDialogue(segs []segment, maxSize int) []segment {
	out := make([]segment, 0, len(segs))
	var buf []segment
	var state quoteState

	flush := func() {
		if len(buf) == 0 {
			return
		}
		out = append(out, mergeOrSplit(buf, maxSize)...)
		buf = nil
	}

	for _, seg := range segs {
		state.observe(seg.text)

		if len(buf) == 0 && !state.open() {
			out = append(out, seg)
			continue
		}

		buf = append(buf, seg)
		if !state.open() {
			flush()
		}
	}
	flush()

	return out
}

// mergeOrSplit joins buffered segments into one space-separated unit.
// When the join would exceed maxSize the buffer is re-split at sentence
// terminals instead, so a paragraph that entered the buffer whole still
// comes out sentence-bounded.
func mergeOrSplit(buf []segment, maxSize int) []segment {
	if len(buf) == 1 {
		return buf
	}

	size := len(buf) - 1 // separators
	for _, seg := range buf {
		size += seg.size()
	}
	if size > maxSize {
		return resplitSentences(buf)
	}

	texts := make([]string, len(buf))
	for i, seg := range buf {
		texts[i] = seg.text
	}
	return []segment{{
		text:  strings.Join(texts, " "),
		start: buf[0].start,
		end:   buf[len(buf)-1].end,
	}}
}

// resplitSentences re-splits each buffered segment at sentence-terminal
// punctuation. Segments already at sentence granularity pass through
// unchanged; each result fits within the original segment, so no size
// bound is at risk.
func resplitSentences(buf []segment) []segment {
	out := make([]segment, 0, len(buf))
	for _, seg := range buf {
		out = append(out, splitSentences(seg)...)
	}
	return out
}

// runeLen is a readability alias for rune counting.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
