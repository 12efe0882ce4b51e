package chunk

import (
	"strings"
	"testing"
)

// mustSegment builds a segment over the whole of text.
func mustSegment(t *testing.T, text string) segment {
	t.Helper()
	seg, ok := newSegment(text, 0, len(text))
	if !ok {
		t.Fatalf("newSegment(%q) produced no segment", text)
	}
	return seg
}

func TestSplitLongSegment_FitsUnchanged(t *testing.T) {
	seg := mustSegment(t, "short enough already")

	got := splitLongSegment(seg, 100)
	if len(got) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(got))
	}
	if got[0] != seg {
		t.Errorf("segment was modified: %+v", got[0])
	}
}

func TestSplitLongSegment_CommaSplit(t *testing.T) {
	seg := mustSegment(t, "aaa, bbb, ccc")

	got := splitLongSegment(seg, 6)
	want := []string{"aaa,", "bbb,", "ccc"}
	if len(got) != len(want) {
		t.Fatalf("expected %d pieces, got %d: %+v", len(want), len(got), got)
	}
	for i := range got {
		if got[i].text != want[i] {
			t.Errorf("piece[%d] = %q, want %q", i, got[i].text, want[i])
		}
	}
}

func TestSplitLongSegment_GreedyGrouping(t *testing.T) {
	seg := mustSegment(t, "aa, bb, cc, dd")

	got := splitLongSegment(seg, 7)
	want := []string{"aa, bb,", "cc, dd"}
	if len(got) != len(want) {
		t.Fatalf("expected %d groups, got %d: %+v", len(want), len(got), got)
	}
	for i := range got {
		if got[i].text != want[i] {
			t.Errorf("group[%d] = %q, want %q", i, got[i].text, want[i])
		}
	}
}

func TestSplitLongSegment_Delimiters(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"semicolon", "one thing; another thing; a third"},
		{"colon", "the list: first item: second item"},
		{"em dash", "a pause—then another—then done"},
		{"en dash", "a pause–then another–then done"},
		{"hyphen", "a pause-then another-then done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := mustSegment(t, tt.text)
			got := splitLongSegment(seg, 12)
			if len(got) < 2 {
				t.Fatalf("expected a split, got %d pieces", len(got))
			}
			for i, p := range got {
				if p.size() > 12 {
					t.Errorf("piece[%d] %q exceeds size 12", i, p.text)
				}
			}
		})
	}
}

func TestSplitLongSegment_HardCut(t *testing.T) {
	seg := mustSegment(t, strings.Repeat("x", 250))

	got := splitLongSegment(seg, 100)
	if len(got) != 5 {
		t.Fatalf("expected 5 pieces of 50, got %d", len(got))
	}
	for i, p := range got {
		if p.size() != 50 {
			t.Errorf("piece[%d] size = %d, want 50", i, p.size())
		}
	}
}

func TestSplitLongSegment_HardCutTinyLimit(t *testing.T) {
	// maxSize at or below the reserve falls back to cutting at maxSize.
	seg := mustSegment(t, strings.Repeat("y", 100))

	got := splitLongSegment(seg, 40)
	if len(got) != 3 {
		t.Fatalf("expected 3 pieces, got %d", len(got))
	}
	for i, p := range got {
		if p.size() > 40 {
			t.Errorf("piece[%d] size = %d, want <= 40", i, p.size())
		}
	}
}

func TestSplitLongSegment_Offsets(t *testing.T) {
	text := "aaaa, bbbb; cccc—dddd, " + strings.Repeat("e", 40)
	seg := mustSegment(t, text)

	for i, p := range splitLongSegment(seg, 10) {
		if got := text[p.start:p.end]; got != p.text {
			t.Errorf("piece %d: text[%d:%d] = %q, want %q", i, p.start, p.end, got, p.text)
		}
	}
}
