package chunk

import (
	"fmt"
	"unicode/utf8"
)

// TextChunk is one bounded-size, contiguous, in-order piece of the
// original text. Chunks are never mutated after they are returned.
type TextChunk struct {
	// Text is the chunk content.
	Text string `json:"text"`

	// Index is the position of this chunk in the sequence, contiguous
	// from 0.
	Index int `json:"index"`

	// StartOffset is the byte offset in the input where the chunk's
	// first segment begins.
	StartOffset int `json:"start_offset"`

	// EndOffset is the byte offset in the input just past the chunk's
	// last segment. Offsets refer to the normalized input when
	// Options.NormalizeUnicode is enabled.
	EndOffset int `json:"end_offset"`
}

// Size returns the chunk size in runes, the unit maxSize is measured in.
func (c TextChunk) Size() int {
	return utf8.RuneCountInString(c.Text)
}

// String returns a short human-readable description of the chunk.
func (c TextChunk) String() string {
	return fmt.Sprintf("chunk %d [%d:%d] (%d chars)", c.Index, c.StartOffset, c.EndOffset, c.Size())
}

// Stats summarizes a chunk list. It is the observability surface of the
// splitter: callers that want to log a split report these numbers.
type Stats struct {
	// TotalChunks is the number of chunks produced.
	TotalChunks int

	// TotalChars is the combined rune count of all chunk texts.
	TotalChars int

	// MinChunkSize is the smallest chunk size in runes (0 when empty).
	MinChunkSize int

	// MaxChunkSize is the largest chunk size in runes.
	MaxChunkSize int

	// AvgChunkSize is the mean chunk size in runes, truncated.
	AvgChunkSize int
}

// String returns a human-readable summary of the statistics.
func (s Stats) String() string {
	return fmt.Sprintf("%d chunks, %d chars, size min/avg/max %d/%d/%d",
		s.TotalChunks, s.TotalChars, s.MinChunkSize, s.AvgChunkSize, s.MaxChunkSize)
}

// ComputeStats calculates summary statistics for a chunk list.
func ComputeStats(chunks []TextChunk) Stats {
	stats := Stats{
		TotalChunks:  len(chunks),
		MinChunkSize: -1,
	}

	for _, c := range chunks {
		size := c.Size()
		stats.TotalChars += size

		if stats.MinChunkSize < 0 || size < stats.MinChunkSize {
			stats.MinChunkSize = size
		}
		if size > stats.MaxChunkSize {
			stats.MaxChunkSize = size
		}
	}

	if len(chunks) > 0 {
		stats.AvgChunkSize = stats.TotalChars / len(chunks)
	}
	if stats.MinChunkSize < 0 {
		stats.MinChunkSize = 0
	}

	return stats
}
