package value

import "deepholdem/internal/poker"

// phaseState is the typed bundle one approximation phase runs with: its
// model, board count, per-board legality masks, sum-normalization constant
// and the scratch input/output buffers sized at Setup. The prediction call
// writes through the values slice in place; nothing else may touch the two
// buffers while a call is outstanding.
type phaseState struct {
	phase  Phase
	model  Predictor
	boards int
	masks  [][]float32 // boards x HandCount, 1 legal / 0 illegal
	norm   float32
	inputs []float32 // [batch*boards][InputWidth] rows
	values []float32 // [batch*boards][OutputWidth] rows, written by Predict
}

// prepare sizes (or reuses) the scratch buffers and fills the slots that
// stay fixed across the subgame's iterations: the pot feature and the board
// features. Range slots are zeroed here and rewritten every Evaluate.
func (s *phaseState) prepare(phase Phase, model Predictor, batch int, pots []float32, stack float32, masks, feats [][]float32, norm float32) {
	width := InputWidth()
	boards := len(masks)
	s.phase = phase
	s.model = model
	s.boards = boards
	s.masks = masks
	s.norm = norm
	s.inputs = resize(s.inputs, batch*boards*width)
	s.values = resize(s.values, batch*boards*OutputWidth())
	rangeWidth := poker.PlayerCount * poker.HandCount
	for b := 0; b < batch; b++ {
		for bd := 0; bd < boards; bd++ {
			row := s.inputs[(b*boards+bd)*width:][:width]
			for i := 0; i < rangeWidth; i++ {
				row[i] = 0
			}
			row[rangeWidth] = pots[b] / stack
			copy(row[rangeWidth+1:], feats[bd])
		}
	}
	for i := range s.values {
		s.values[i] = 0
	}
}
