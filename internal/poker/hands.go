package poker

// Process-wide constants of the heads-up game instance.
const (
	PlayerCount = 2
	// HandCount is the number of distinct two-card hole combinations, C(52,2).
	HandCount = 1326
)

var (
	handCards [HandCount][2]Card
	handIndex [DeckSize][DeckSize]int
)

func init() {
	h := 0
	for a := Card(0); a < DeckSize; a++ {
		for b := a + 1; b < DeckSize; b++ {
			handCards[h] = [2]Card{a, b}
			handIndex[a][b] = h
			handIndex[b][a] = h
			h++
		}
	}
}

// HandCards returns the two cards of hand h, lower card first.
func HandCards(h int) (Card, Card) {
	return handCards[h][0], handCards[h][1]
}

// HandIndex returns the index of the hand holding cards a and b.
func HandIndex(a, b Card) int {
	return handIndex[a][b]
}

// LegalHandMask marks, per hand, whether the hand shares no card with the
// board: 1 for legal hands, 0 otherwise. Pure function of the board.
func LegalHandMask(b Board) []float32 {
	var blocked [DeckSize]bool
	for _, c := range b {
		blocked[c] = true
	}
	mask := make([]float32, HandCount)
	for h := range handCards {
		if !blocked[handCards[h][0]] && !blocked[handCards[h][1]] {
			mask[h] = 1
		}
	}
	return mask
}

// LegalHandCount counts the hands legal on the board.
func LegalHandCount(b Board) int {
	var blocked [DeckSize]bool
	for _, c := range b {
		blocked[c] = true
	}
	n := 0
	for h := range handCards {
		if !blocked[handCards[h][0]] && !blocked[handCards[h][1]] {
			n++
		}
	}
	return n
}
