// Package chunk splits long narration text into ordered, size-bounded
// chunks suitable for speech-synthesis providers that enforce a hard
// per-request character limit.
//
// # Splitting
//
// [Split] is the entry point:
//
//	chunks, err := chunk.Split(text, 4096, chunk.DefaultOptions())
//
// Text at or under the limit is returned as a single chunk untouched.
// Longer text is segmented and re-packed without breaking:
//   - Sentences (abbreviation, decimal and ellipsis aware)
//   - Quoted dialogue
//   - Words (except in the documented hard-cut last resort)
//
// # Pipeline
//
// Splitting runs as an ordered list of stages selected by [Options]:
//
//   - Paragraph segmentation on blank lines, with oversized paragraphs
//     expanded to sentences and oversized sentences expanded at
//     secondary punctuation (or sentence-first when
//     Options.PreferParagraphs is false)
//   - Dialogue re-merging, so an opened quotation is not synthesized
//     across two audio requests (Options.PreserveDialogue)
//   - Greedy merging of segments into chunks of at most maxSize
//     characters, folding under-floor chunks into their neighbor
//     (Options.MinChunkSize)
//
// # Chunk Contract
//
// Every returned [TextChunk] carries the chunk text, its position in the
// sequence (contiguous from 0), and the exact byte range of its first
// and last segment in the input. Concatenating chunks in index order
// reproduces the input's word sequence. Chunk sizes are measured in
// runes; offsets are byte offsets.
//
// # Statistics
//
// [ComputeStats] summarizes a chunk list (count, min/avg/max size) for
// callers that want to log or report on a split.
package chunk
