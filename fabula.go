// Package fabula provides a fluent API for splitting long narration
// text into ordered, size-bounded chunks that respect sentence,
// abbreviation, decimal, ellipsis and dialogue boundaries, the shape
// speech-synthesis providers with a hard per-request character limit
// need their input in.
//
// Basic usage:
//
//	chunks, err := fabula.Text(narration).MaxSize(4096).Chunks()
//	if err != nil {
//	    // handle error
//	}
//	for _, c := range chunks {
//	    audio := synthesize(c.Text) // one provider call per chunk
//	    _ = audio
//	}
//
// With options:
//
//	chunks, err := fabula.Text(narration).
//	    MaxSize(1000).
//	    MinChunkSize(200).
//	    SentenceFirst().
//	    Chunks()
//
// For direct access to the engine, the lower-level chunk package is
// also available.
package fabula

// Text starts a fluent split of s. Call option methods to configure the
// split, then a terminal method such as Chunks to run it.
//
// Example:
//
//	chunks, err := fabula.Text(narration).MaxSize(4096).Chunks()
func Text(s string) *Splitter {
	return &Splitter{
		text:    s,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	chunks := fabula.Must(fabula.Text(narration).Chunks())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
