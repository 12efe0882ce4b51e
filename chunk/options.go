package chunk

// Options controls how text is segmented and packed. Options values are
// immutable per call; the zero value is NOT the default, use
// DefaultOptions.
type Options struct {
	// PreferParagraphs segments on blank-line paragraph boundaries
	// first, expanding only oversized paragraphs down to sentences.
	// When false, the whole text is segmented into sentences directly.
	// Default: true
	PreferParagraphs bool

	// MinChunkSize is the soft floor, in runes, below which a chunk is
	// folded into its neighbor rather than emitted standalone.
	// Default: 500
	MinChunkSize int

	// PreserveDialogue re-merges segments so that a quotation opened in
	// one segment is not split from its close across chunks.
	// Default: true
	PreserveDialogue bool

	// NormalizeUnicode applies NFC normalization before segmentation so
	// decomposed accents do not defeat uppercase boundary detection.
	// Chunk offsets then refer to the normalized text.
	// Default: true
	NormalizeUnicode bool
}

// DefaultOptions returns the default splitting configuration.
func DefaultOptions() Options {
	return Options{
		PreferParagraphs: true,
		MinChunkSize:     500,
		PreserveDialogue: true,
		NormalizeUnicode: true,
	}
}
