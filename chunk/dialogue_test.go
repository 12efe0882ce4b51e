package chunk

import (
	"strings"
	"testing"
)

// layoutSegments builds a segment list from texts as if they sat in one
// source string separated by single spaces.
func layoutSegments(texts []string) []segment {
	segs := make([]segment, 0, len(texts))
	pos := 0
	for _, txt := range texts {
		segs = append(segs, segment{text: txt, start: pos, end: pos + len(txt)})
		pos += len(txt) + 1
	}
	return segs
}

func TestMergeDialogue(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		maxSize int
		want    []string
	}{
		{
			name:    "no quotes unchanged",
			in:      []string{"First sentence.", "Second sentence."},
			maxSize: 100,
			want:    []string{"First sentence.", "Second sentence."},
		},
		{
			name:    "straight quote split is re-merged",
			in:      []string{`She said, "I am.`, `Going now." Then left.`},
			maxSize: 100,
			want:    []string{`She said, "I am. Going now." Then left.`},
		},
		{
			name:    "curly quote split is re-merged",
			in:      []string{"He said, “Stop!", "Right now.”"},
			maxSize: 100,
			want:    []string{"He said, “Stop! Right now.”"},
		},
		{
			name:    "balanced quotes pass through",
			in:      []string{`"Fine." He left.`, "Nothing else."},
			maxSize: 100,
			want:    []string{`"Fine." He left.`, "Nothing else."},
		},
		{
			name:    "merge spanning three segments",
			in:      []string{`He whispered, "Stay.`, "Stay very still.", `Do not move."`},
			maxSize: 100,
			want:    []string{`He whispered, "Stay. Stay very still. Do not move."`},
		},
		{
			name:    "oversized merge falls back to sentences",
			in:      []string{`She said, "I am.`, `Going now." Then left.`},
			maxSize: 20,
			want:    []string{`She said, "I am.`, `Going now."`, `Then left.`},
		},
		{
			name:    "oversized paragraph buffer re-splits at sentence terminals",
			in:      []string{`He said, "Begin now.`, `First part done. Second part done."`},
			maxSize: 40,
			want:    []string{`He said, "Begin now.`, `First part done.`, `Second part done."`},
		},
		{
			name:    "unclosed quote flushes at end",
			in:      []string{`"It begins here`, "and never closes"},
			maxSize: 100,
			want:    []string{`"It begins here and never closes`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeDialogue(layoutSegments(tt.in), tt.maxSize)
			if len(got) != len(tt.want) {
				t.Fatalf("mergeDialogue returned %d segments, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i].text != tt.want[i] {
					t.Errorf("segment[%d] = %q, want %q", i, got[i].text, tt.want[i])
				}
			}
		})
	}
}

func TestMergeDialogue_OffsetsSpanMerge(t *testing.T) {
	in := layoutSegments([]string{`He said, "Wait.`, `Be patient."`})

	got := mergeDialogue(in, 100)
	if len(got) != 1 {
		t.Fatalf("expected 1 merged segment, got %d", len(got))
	}
	if got[0].start != in[0].start {
		t.Errorf("merged start = %d, want %d", got[0].start, in[0].start)
	}
	if got[0].end != in[1].end {
		t.Errorf("merged end = %d, want %d", got[0].end, in[1].end)
	}
}

func TestQuoteState(t *testing.T) {
	var q quoteState

	q.observe(`He said, "hello`)
	if !q.open() {
		t.Error("expected open after unpaired straight quote")
	}

	q.observe(`world."`)
	if q.open() {
		t.Error("expected closed after pairing straight quote")
	}

	q.observe("“nested “deeper” still")
	if !q.open() {
		t.Error("expected open with unbalanced curly quotes")
	}

	q.observe("”")
	if q.open() {
		t.Error("expected closed after balancing curly quotes")
	}

	// A stray closing quote must not underflow.
	q.observe("” extra")
	if q.open() {
		t.Error("stray closing quote should leave state closed")
	}
}

func TestMergeOrSplit_SizeAccounting(t *testing.T) {
	// Exactly at the limit merges; one over does not.
	a := segment{text: strings.Repeat("a", 10), start: 0, end: 10}
	b := segment{text: strings.Repeat("b", 9), start: 11, end: 20}

	if got := mergeOrSplit([]segment{a, b}, 20); len(got) != 1 {
		t.Errorf("20-rune join under limit 20 should merge, got %d segments", len(got))
	}
	if got := mergeOrSplit([]segment{a, b}, 19); len(got) != 2 {
		t.Errorf("20-rune join over limit 19 should stay split, got %d segments", len(got))
	}
}
