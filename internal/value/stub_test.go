package value

import (
	"fmt"

	"deepholdem/internal/poker"
)

// stubPredictor stands in for a loaded model: it records what it was asked
// to predict and writes deterministic output into the caller's buffer.
type stubPredictor struct {
	calls      int
	lastRows   int
	lastInputs []float32
	fill       func(row int, out []float32)
	err        error
	closed     bool
}

func (s *stubPredictor) Predict(inputs, outputs []float32, rows int) error {
	if s.err != nil {
		return s.err
	}
	s.calls++
	s.lastRows = rows
	s.lastInputs = append(s.lastInputs[:0], inputs[:rows*InputWidth()]...)
	width := OutputWidth()
	for r := 0; r < rows; r++ {
		out := outputs[r*width : (r+1)*width]
		if s.fill != nil {
			s.fill(r, out)
		} else {
			for i := range out {
				out[i] = 0
			}
		}
	}
	return nil
}

func (s *stubPredictor) Close() error {
	s.closed = true
	return nil
}

func (s *stubPredictor) inputRow(row int) []float32 {
	width := InputWidth()
	return s.lastInputs[row*width : (row+1)*width]
}

// stubLoader serves the given predictors regardless of round; a nil
// predictor reports absent weights for that phase.
func stubLoader(leaf, root *stubPredictor) ModelLoader {
	return func(round poker.Round, phase Phase) (Predictor, error) {
		var p *stubPredictor
		if phase == RootApproximation {
			p = root
		} else {
			p = leaf
		}
		if p == nil {
			return nil, fmt.Errorf("%s %s: %w", round, phase, ErrWeightsNotFound)
		}
		return p, nil
	}
}

func testConfig() Config {
	return Config{
		Stack:     20000,
		SkipIters: 0,
		LeafIters: map[poker.Round]int{},
	}
}

// uniformLegalRanges spreads each player's mass uniformly over the hands
// legal on the board, replicated across the batch.
func uniformLegalRanges(board poker.Board, batch int, playerMass [poker.PlayerCount]float32) []float32 {
	mask := poker.LegalHandMask(board)
	n := float32(poker.LegalHandCount(board))
	out := make([]float32, batch*poker.PlayerCount*poker.HandCount)
	for b := 0; b < batch; b++ {
		for p := 0; p < poker.PlayerCount; p++ {
			row := out[(b*poker.PlayerCount+p)*poker.HandCount:][:poker.HandCount]
			for h, m := range mask {
				row[h] = m * playerMass[p] / n
			}
		}
	}
	return out
}
