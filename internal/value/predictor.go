package value

import (
	"errors"

	"deepholdem/internal/poker"
)

// Predictor is the value-model collaborator. Predict runs batched inference
// over rows of [2*HC normalized range | pot/stack | board features], writing
// 2*HC counterfactual values per row in place into outputs. The model is
// expected to zero its output for hands illegal on the row's board. No other
// access to the two slices is permitted while the call is outstanding.
type Predictor interface {
	Predict(inputs, outputs []float32, rows int) error
	Close() error
}

// Phase selects which approximation an iteration runs.
type Phase uint8

const (
	// LeafApproximation queries the current-round model on the current
	// board only.
	LeafApproximation Phase = iota
	// RootApproximation queries the next-round model on every next board
	// and averages the results.
	RootApproximation
)

func (p Phase) String() string {
	switch p {
	case LeafApproximation:
		return "leaf"
	case RootApproximation:
		return "root"
	default:
		return "unknown"
	}
}

// ModelLoader constructs the predictor for a (round, phase) pair. When the
// pretrained weights for that pair are absent it must return an error
// wrapping ErrWeightsNotFound; any other error is treated as a real failure
// and propagated.
type ModelLoader func(round poker.Round, phase Phase) (Predictor, error)

var (
	// ErrWeightsNotFound marks pretrained weights that do not exist for a
	// (round, phase) pair.
	ErrWeightsNotFound = errors.New("pretrained weights not found")

	// ErrEngineNotFound is returned by Registry.EngineFor when no engine
	// was built for the round.
	ErrEngineNotFound = errors.New("no value engine for round")
)

// InputWidth is the per-row model input length for the current feature
// encoding.
func InputWidth() int {
	return poker.PlayerCount*poker.HandCount + 1 + poker.NumBoardFeatures()
}

// OutputWidth is the per-row model output length.
func OutputWidth() int {
	return poker.PlayerCount * poker.HandCount
}
