package chunk

import "strings"

// mergeChunks greedily packs ordered segments into chunks of at most
// maxSize runes. An accumulator that would be flushed below
// minChunkSize is folded into the previous chunk instead of standing
// alone, unless the fold itself would break the size bound, in which
// case the small chunk is emitted anyway: the hard limit wins over the
// soft floor. Chunks come out re-indexed contiguously from 0, in
// original order, never empty.
func mergeChunks(segs []segment, maxSize, minChunkSize int) []TextChunk {
	chunks := make([]TextChunk, 0, len(segs))

	var accTexts []string
	var accStart, accEnd int
	accSize := 0

	flush := func() {
		if len(accTexts) == 0 {
			return
		}
		text := strings.Join(accTexts, " ")

		if accSize >= minChunkSize || len(chunks) == 0 {
			chunks = append(chunks, TextChunk{
				Text:        text,
				StartOffset: accStart,
				EndOffset:   accEnd,
			})
		} else {
			prev := &chunks[len(chunks)-1]
			combined := prev.Text + " " + text
			if runeLen(combined) <= maxSize {
				prev.Text = combined
				prev.EndOffset = accEnd
			} else {
				// Folding would exceed the provider limit; a small
				// standalone chunk is the lesser harm.
				chunks = append(chunks, TextChunk{
					Text:        text,
					StartOffset: accStart,
					EndOffset:   accEnd,
				})
			}
		}

		accTexts = nil
		accSize = 0
	}

	for _, seg := range segs {
		add := seg.size()
		if len(accTexts) > 0 {
			add++ // joining space
		}

		if len(accTexts) > 0 && accSize+add > maxSize {
			flush()
			add = seg.size()
		}

		if len(accTexts) == 0 {
			accStart = seg.start
		}
		accTexts = append(accTexts, seg.text)
		accEnd = seg.end
		accSize += add
	}
	flush()

	for i := range chunks {
		chunks[i].Index = i
	}

	return chunks
}
