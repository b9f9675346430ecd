package poker

import "testing"

func TestHandIndexBijection(t *testing.T) {
	seen := make(map[int]bool, HandCount)
	for a := Card(0); a < DeckSize; a++ {
		for b := a + 1; b < DeckSize; b++ {
			h := HandIndex(a, b)
			if h < 0 || h >= HandCount {
				t.Fatalf("hand index %d out of range for %s%s", h, a, b)
			}
			if seen[h] {
				t.Fatalf("hand index %d assigned twice", h)
			}
			seen[h] = true
			ca, cb := HandCards(h)
			if ca != a || cb != b {
				t.Fatalf("hand %d: got %s%s, want %s%s", h, ca, cb, a, b)
			}
			if HandIndex(b, a) != h {
				t.Fatalf("hand index not symmetric for %s%s", a, b)
			}
		}
	}
	if len(seen) != HandCount {
		t.Fatalf("got %d distinct hands, want %d", len(seen), HandCount)
	}
}

func TestLegalHandMask(t *testing.T) {
	if got := LegalHandCount(nil); got != HandCount {
		t.Fatalf("empty board legal hands: got %d, want %d", got, HandCount)
	}

	board, _ := ParseBoard("AsKd7h")
	mask := LegalHandMask(board)
	want := 49 * 48 / 2 // C(49,2)
	if got := LegalHandCount(board); got != want {
		t.Fatalf("flop legal hands: got %d, want %d", got, want)
	}
	n := 0
	for h, m := range mask {
		a, b := HandCards(h)
		onBoard := board.Contains(a) || board.Contains(b)
		switch {
		case m == 1 && onBoard:
			t.Fatalf("hand %s%s marked legal but shares a board card", a, b)
		case m == 0 && !onBoard:
			t.Fatalf("hand %s%s marked illegal but shares no board card", a, b)
		case m != 0 && m != 1:
			t.Fatalf("mask entry %d is %v, want 0 or 1", h, m)
		}
		if m == 1 {
			n++
		}
	}
	if n != want {
		t.Fatalf("mask sums to %d, want %d", n, want)
	}
}
