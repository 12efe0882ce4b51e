package chunk

import (
	"unicode/utf8"
)

// hardCutReserve is subtracted from maxSize when force-cutting a piece
// with no usable split points, leaving headroom for the provider.
const hardCutReserve = 50

// splitLongSegment splits a segment that exceeds maxSize at secondary
// punctuation (commas, semicolons, colons, dashes), keeping each
// delimiter attached to the piece before it. Pieces are greedily
// regrouped up to maxSize. A piece with no delimiters that still
// exceeds maxSize is hard-cut at fixed rune offsets, a lossy last
// resort with no word-boundary awareness, but one that always
// terminates and always fits the budget.
func splitLongSegment(seg segment, maxSize int) []segment {
	if seg.size() <= maxSize {
		return []segment{seg}
	}

	pieces := splitAtSecondary(seg)
	groups := packPieces(seg, pieces, maxSize)

	out := make([]segment, 0, len(groups))
	for _, g := range groups {
		if g.size() > maxSize {
			out = append(out, hardCut(g, maxSize)...)
		} else {
			out = append(out, g)
		}
	}
	return out
}

// splitAtSecondary splits seg at commas, semicolons, colons and dashes,
// delimiter attached to the preceding piece. Offsets stay absolute.
func splitAtSecondary(seg segment) []segment {
	text := seg.text
	pieces := make([]segment, 0, 8)

	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isSecondaryDelimiter(r) {
			if piece, ok := newSegment(text, start, i+size); ok {
				piece.start += seg.start
				piece.end += seg.start
				pieces = append(pieces, piece)
			}
			start = i + size
		}
		i += size
	}
	if piece, ok := newSegment(text, start, len(text)); ok {
		piece.start += seg.start
		piece.end += seg.start
		pieces = append(pieces, piece)
	}

	return pieces
}

// packPieces greedily accumulates adjacent pieces of parent until the
// next addition would exceed maxSize. Each group's text is the parent
// slice spanning its pieces, so original spacing survives regrouping.
// The running size counts the slice from the group's first piece to its
// last, gap characters included, so the check is exact.
func packPieces(parent segment, pieces []segment, maxSize int) []segment {
	if len(pieces) == 0 {
		return nil
	}

	groups := make([]segment, 0, len(pieces))
	first := pieces[0]
	last := pieces[0]
	groupSize := first.size()

	emit := func(a, b segment) {
		if group, ok := newSegment(parent.text, a.start-parent.start, b.end-parent.start); ok {
			group.start += parent.start
			group.end += parent.start
			groups = append(groups, group)
		}
	}

	for _, piece := range pieces[1:] {
		added := runeLen(parent.text[last.end-parent.start : piece.end-parent.start])
		if groupSize+added <= maxSize {
			last = piece
			groupSize += added
			continue
		}
		emit(first, last)
		first, last = piece, piece
		groupSize = piece.size()
	}
	emit(first, last)

	return groups
}

// hardCut slices seg into fixed-width rune pieces of maxSize minus the
// reserve. When maxSize is too small for a reserve, the full budget is
// used so the cut still makes progress.
func hardCut(seg segment, maxSize int) []segment {
	width := maxSize - hardCutReserve
	if width <= 0 {
		width = maxSize
	}

	text := seg.text
	pieces := make([]segment, 0, seg.size()/width+1)

	start := 0
	count := 0
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
		count++
		if count == width {
			if piece, ok := newSegment(text, start, i); ok {
				piece.start += seg.start
				piece.end += seg.start
				pieces = append(pieces, piece)
			}
			start = i
			count = 0
		}
	}
	if piece, ok := newSegment(text, start, len(text)); ok {
		piece.start += seg.start
		piece.end += seg.start
		pieces = append(pieces, piece)
	}

	return pieces
}

// isSecondaryDelimiter reports whether r is a comma, semicolon, colon,
// or an em, en or hyphen dash.
func isSecondaryDelimiter(r rune) bool {
	switch r {
	case ',', ';', ':', '—', '–', '-':
		return true
	}
	return false
}
