package fabula

import "github.com/tsawler/fabula/chunk"

// splitOptions holds configuration for a fluent split.
type splitOptions struct {
	maxSize int
	engine  chunk.Options
}

// defaultOptions returns the default split options: a 4096-character
// limit with the engine defaults (paragraph-first segmentation, 500
// minimum chunk size, dialogue preservation, NFC normalization).
func defaultOptions() splitOptions {
	return splitOptions{
		maxSize: 4096,
		engine:  chunk.DefaultOptions(),
	}
}

// Splitter is a fluent builder around the chunk engine. Configure it
// with option methods, then call a terminal method (Chunks,
// ChunksWithStats, Estimate, NeedsChunking) to run the split.
type Splitter struct {
	text    string
	options splitOptions
}

// MaxSize sets the hard per-chunk character limit imposed by the
// downstream consumer. Default: 4096.
func (s *Splitter) MaxSize(n int) *Splitter {
	s.options.maxSize = n
	return s
}

// MinChunkSize sets the soft floor below which a chunk is merged into
// its neighbor rather than emitted standalone. Default: 500.
func (s *Splitter) MinChunkSize(n int) *Splitter {
	s.options.engine.MinChunkSize = n
	return s
}

// SentenceFirst segments the whole text into sentences directly instead
// of paragraph-first segmentation.
func (s *Splitter) SentenceFirst() *Splitter {
	s.options.engine.PreferParagraphs = false
	return s
}

// SplitDialogue disables dialogue preservation, allowing chunk
// boundaries inside quoted passages.
func (s *Splitter) SplitDialogue() *Splitter {
	s.options.engine.PreserveDialogue = false
	return s
}

// RawUnicode disables NFC normalization of the input before
// segmentation.
func (s *Splitter) RawUnicode() *Splitter {
	s.options.engine.NormalizeUnicode = false
	return s
}

// Chunks runs the split and returns the ordered chunk list.
func (s *Splitter) Chunks() ([]chunk.TextChunk, error) {
	return chunk.Split(s.text, s.options.maxSize, s.options.engine)
}

// ChunksWithStats runs the split and additionally returns summary
// statistics for logging or progress reporting.
func (s *Splitter) ChunksWithStats() ([]chunk.TextChunk, chunk.Stats, error) {
	chunks, err := s.Chunks()
	if err != nil {
		return nil, chunk.Stats{}, err
	}
	return chunks, chunk.ComputeStats(chunks), nil
}

// NeedsChunking reports whether the text exceeds the configured limit.
func (s *Splitter) NeedsChunking() bool {
	return chunk.NeedsChunking(s.text, s.options.maxSize)
}

// Estimate returns a fast upper-bound estimate of the chunk count, for
// progress reporting. It is not guaranteed to match the actual count.
func (s *Splitter) Estimate() int {
	return chunk.EstimateChunkCount(s.text, s.options.maxSize)
}
