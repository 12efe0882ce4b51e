package chunk

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrInvalidMaxSize is returned when Split is called with a
// non-positive size limit.
var ErrInvalidMaxSize = errors.New("chunk: maxSize must be positive")

// stage is one pluggable transformation in the segmentation pipeline.
// Stages run in order between initial segmentation and final chunk
// merging; locale-specific rules can slot in here without touching the
// orchestrator.
type stage struct {
	name  string
	apply func([]segment) []segment
}

// Split divides text into ordered chunks of at most maxSize runes
// without breaking sentences, abbreviations, decimal numbers, ellipses
// or quoted dialogue across chunk boundaries.
//
// Text already within the limit is returned untouched as a single
// chunk. Empty or whitespace-only input yields no chunks. The function
// is pure and deterministic; concurrent calls are safe.
func Split(text string, maxSize int, opts Options) ([]TextChunk, error) {
	if maxSize <= 0 {
		return nil, ErrInvalidMaxSize
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	// Fast path: the whole text fits in one request.
	if utf8.RuneCountInString(text) <= maxSize {
		return []TextChunk{{
			Text:        text,
			Index:       0,
			StartOffset: 0,
			EndOffset:   len(text),
		}}, nil
	}

	if opts.NormalizeUnicode {
		text = norm.NFC.String(text)
	}

	segs := segmentText(text, maxSize, opts.PreferParagraphs)
	for _, st := range pipeline(maxSize, opts) {
		segs = st.apply(segs)
	}

	return mergeChunks(segs, maxSize, opts.MinChunkSize), nil
}

// pipeline selects the transformation stages for this configuration.
func pipeline(maxSize int, opts Options) []stage {
	var stages []stage
	if opts.PreserveDialogue {
		stages = append(stages, stage{
			name: "dialogue",
			apply: func(segs []segment) []segment {
				return mergeDialogue(segs, maxSize)
			},
		})
	}
	return stages
}

// segmentText produces the initial ordered segment list. With
// preferParagraphs, paragraphs within budget pass through at their
// coarser granularity and only oversized ones are expanded to
// sentences, then to sub-sentence pieces. Otherwise the whole text is
// segmented into sentences directly.
func segmentText(text string, maxSize int, preferParagraphs bool) []segment {
	if !preferParagraphs {
		whole, ok := newSegment(text, 0, len(text))
		if !ok {
			return nil
		}
		return expandSentences(splitSentences(whole), maxSize)
	}

	var segs []segment
	for _, para := range splitParagraphs(text) {
		if para.size() <= maxSize {
			segs = append(segs, para)
			continue
		}
		segs = append(segs, expandSentences(splitSentences(para), maxSize)...)
	}
	return segs
}

// expandSentences passes through sentences within budget and splits the
// oversized ones at secondary punctuation.
func expandSentences(sentences []segment, maxSize int) []segment {
	out := make([]segment, 0, len(sentences))
	for _, s := range sentences {
		if s.size() <= maxSize {
			out = append(out, s)
			continue
		}
		out = append(out, splitLongSegment(s, maxSize)...)
	}
	return out
}

// NeedsChunking reports whether text exceeds maxSize and therefore
// requires splitting before synthesis.
func NeedsChunking(text string, maxSize int) bool {
	return utf8.RuneCountInString(text) > maxSize
}

// EstimateChunkCount returns a fast upper-bound estimate of how many
// chunks Split will produce, for progress reporting. It assumes chunks
// fill to roughly 80% of maxSize and is not guaranteed to equal the
// actual count.
func EstimateChunkCount(text string, maxSize int) int {
	if maxSize <= 0 {
		return 0
	}
	n := utf8.RuneCountInString(text)
	if n <= maxSize {
		return 1
	}
	return int(math.Ceil(float64(n) / (float64(maxSize) * 0.8)))
}
