package poker

// BoardFeature encodes a board into the fixed-length vector the value models
// were trained on: 52 card one-hots, 13 rank counts, 4 suit counts. Every
// board, including the empty one, yields the same length.
func BoardFeature(b Board) []float32 {
	f := make([]float32, DeckSize+RankCount+SuitCount)
	for _, c := range b {
		f[c] = 1
		f[DeckSize+c.Rank()]++
		f[DeckSize+RankCount+c.Suit()]++
	}
	return f
}

// NumBoardFeatures is the feature length, derived from an empty-board probe.
func NumBoardFeatures() int {
	return len(BoardFeature(nil))
}
