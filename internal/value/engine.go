package value

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"deepholdem/internal/poker"
)

// Engine approximates counterfactual values at the depth limit of one
// round's subgames. It owns its two models and scratch buffers for the
// process lifetime; Setup rebinds it to a new subgame, Evaluate serves one
// outer-loop iteration.
type Engine struct {
	round      poker.Round
	stack      float32
	skipIters  int
	leafBudget int

	rootModel Predictor
	leafModel Predictor // nil when weights were absent; engine is root-only

	// Per-subgame mutable state, reset by Setup. Not synchronized: one
	// subgame at a time per engine instance.
	subgameID  string
	batch      int
	potSizes   []float32
	board      poker.Board
	nextBoards []poker.Board
	leaf       phaseState
	root       phaseState
	mass       []float32 // swapped masked range mass, [batch*boards*players]
	iter       int
	acc        accumulator
	ready      bool
}

// NewEngine loads the next round's root model (mandatory) and the round's
// own leaf model (optional). Absent leaf weights degrade the engine to
// root-only with a warning; any other load failure is returned.
func NewEngine(round poker.Round, cfg Config, loader ModelLoader) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	next, ok := round.Next()
	if !ok {
		return nil, fmt.Errorf("round %s has no next round to approximate", round)
	}
	rootModel, err := loader(next, RootApproximation)
	if err != nil {
		return nil, fmt.Errorf("root model for %s: %w", next, err)
	}
	leafBudget := cfg.leafIters(round)
	leafModel, err := loader(round, LeafApproximation)
	if err != nil {
		if !errors.Is(err, ErrWeightsNotFound) {
			_ = rootModel.Close()
			return nil, fmt.Errorf("leaf model for %s: %w", round, err)
		}
		logrus.WithField("round", round.String()).
			Warn("leaf model unavailable, using next-round root values for every iteration")
		leafModel, leafBudget = nil, 0
	}
	return &Engine{
		round:      round,
		stack:      cfg.Stack,
		skipIters:  cfg.SkipIters,
		leafBudget: leafBudget,
		rootModel:  rootModel,
		leafModel:  leafModel,
	}, nil
}

// Round is the round this engine serves.
func (e *Engine) Round() poker.Round { return e.round }

// Setup binds the engine to a subgame: enumerates next boards, precomputes
// features and masks, sizes the scratch buffers, and zeroes the iteration
// counter and accumulator. Must complete before the first Evaluate; may be
// called again for the next subgame once no Evaluate is in flight.
func (e *Engine) Setup(board poker.Board, potSizes []float32, batchSize int) error {
	round, err := poker.RoundOfBoard(board)
	if err != nil {
		return err
	}
	if round != e.round {
		return fmt.Errorf("board %s belongs to %s, engine serves %s", board, round, e.round)
	}
	if batchSize <= 0 {
		return fmt.Errorf("batch size must be > 0, got %d", batchSize)
	}
	if len(potSizes) != batchSize {
		return fmt.Errorf("got %d pot sizes for batch size %d", len(potSizes), batchSize)
	}
	for i, p := range potSizes {
		if p <= 0 {
			return fmt.Errorf("pot size [%d] must be > 0, got %v", i, p)
		}
	}

	e.subgameID = uuid.NewString()
	e.batch = batchSize
	e.potSizes = append(e.potSizes[:0], potSizes...)
	e.board = append(e.board[:0], board...)
	e.nextBoards = poker.NextRoundBoards(board)

	nextMasks := make([][]float32, len(e.nextBoards))
	nextFeats := make([][]float32, len(e.nextBoards))
	for i, nb := range e.nextBoards {
		nextMasks[i] = poker.LegalHandMask(nb)
		nextFeats[i] = poker.BoardFeature(nb)
	}
	// Uniform prior over enumerated continuations, matching what the root
	// model was trained against. Not removal-adjusted per board.
	rootNorm := 1 / float32(poker.NextBoardCount(round))
	e.root.prepare(RootApproximation, e.rootModel, batchSize, e.potSizes, e.stack, nextMasks, nextFeats, rootNorm)

	if e.leafModel != nil {
		legal := poker.LegalHandCount(board)
		if legal == 0 {
			legal = 1
		}
		e.leaf.prepare(LeafApproximation, e.leafModel, batchSize, e.potSizes, e.stack,
			[][]float32{poker.LegalHandMask(board)},
			[][]float32{poker.BoardFeature(board)},
			1/float32(legal))
	}

	e.iter = 0
	e.acc.reset(batchSize*len(e.nextBoards)*poker.PlayerCount, poker.HandCount)
	e.ready = true

	logrus.WithFields(logrus.Fields{
		"round":   e.round.String(),
		"subgame": e.subgameID,
		"board":   board.String(),
		"boards":  len(e.nextBoards),
		"batch":   batchSize,
	}).Debug("value engine bound to subgame")
	return nil
}

// Evaluate returns the per-state counterfactual values for the given hand
// ranges, laid out ranges[state][player][hand] flat. It must be called
// exactly once per outer-loop iteration; the iteration counter picks the
// leaf or root phase. A range length that disagrees with the batch fixed at
// Setup is a caller bug and panics.
func (e *Engine) Evaluate(ranges []float32) ([]float32, error) {
	const (
		pc = poker.PlayerCount
		hc = poker.HandCount
	)
	if !e.ready {
		panic("value: Evaluate called before Setup")
	}
	if len(ranges) != e.batch*pc*hc {
		panic(fmt.Sprintf("value: got %d range entries, batch fixed at Setup needs %d", len(ranges), e.batch*pc*hc))
	}
	e.iter++
	ph := &e.root
	if e.iter <= e.leafBudget {
		ph = &e.leaf
	}
	width := InputWidth()
	batch, boards := e.batch, ph.boards
	e.mass = resize(e.mass, batch*boards*pc)

	for b := 0; b < batch; b++ {
		for bd := 0; bd < boards; bd++ {
			row := ph.inputs[(b*boards+bd)*width:][:width]
			mask := ph.masks[bd]
			var sums [pc]float32
			for p := 0; p < pc; p++ {
				src := ranges[(b*pc+p)*hc:][:hc]
				dst := row[p*hc:][:hc]
				var sum float32
				for i := 0; i < hc; i++ {
					v := src[i] * mask[i]
					dst[i] = v
					sum += v
				}
				sums[p] = sum
			}
			// A hand's counterfactual value scales with the opponent's
			// reach mass into the state, so the rescale factors applied
			// after inference are the swapped sums.
			m := e.mass[(b*boards+bd)*pc:][:pc]
			m[0], m[1] = sums[1], sums[0]
			for p := 0; p < pc; p++ {
				div := sums[p]
				if div == 0 {
					div = 1 // empty legal range yields zero output
				}
				dst := row[p*hc:][:hc]
				for i := range dst {
					dst[i] /= div
				}
			}
		}
	}

	if err := ph.model.Predict(ph.inputs, ph.values, batch*boards); err != nil {
		return nil, fmt.Errorf("%s model predict: %w", ph.phase, err)
	}

	// Back from the model's normalized units to the solver's working units.
	for r := 0; r < batch*boards*pc; r++ {
		scale := e.mass[r]
		out := ph.values[r*hc:][:hc]
		for i := range out {
			out[i] *= scale
		}
	}

	// Only steady-state root output past warm-up feeds the accumulator,
	// before clipping and board reduction.
	if e.iter > e.skipIters && e.iter > e.leafBudget {
		e.acc.add(ph.values, e.mass)
	}

	for b := 0; b < batch; b++ {
		bound := e.stack / e.potSizes[b]
		rows := ph.values[b*boards*pc*hc:][:boards*pc*hc]
		for i, v := range rows {
			if v > bound {
				rows[i] = bound
			} else if v < -bound {
				rows[i] = -bound
			}
		}
	}

	out := make([]float32, batch*pc*hc)
	for b := 0; b < batch; b++ {
		for bd := 0; bd < boards; bd++ {
			for p := 0; p < pc; p++ {
				src := ph.values[((b*boards+bd)*pc+p)*hc:][:hc]
				dst := out[(b*pc+p)*hc:][:hc]
				for i, v := range src {
					dst[i] += v
				}
			}
		}
	}
	for i := range out {
		out[i] *= ph.norm
	}
	return out, nil
}

// BoardCFVs is the averaged root-phase output for every next-round board,
// Values laid out [state][board][player][hand] flat.
type BoardCFVs struct {
	Boards []poker.Board
	Batch  int
	Values []float32
}

// RetrieveAccumulated averages the accumulated root-phase output by its
// accumulated mass. Intended to be read once, after the subgame's last
// Evaluate, when the outer loop decomposes the subgame into the next round.
// A subgame that never passed the accumulation gate returns all zeros.
func (e *Engine) RetrieveAccumulated() BoardCFVs {
	boards := make([]poker.Board, len(e.nextBoards))
	copy(boards, e.nextBoards)
	return BoardCFVs{
		Boards: boards,
		Batch:  e.batch,
		Values: e.acc.averaged(poker.HandCount),
	}
}

// Close releases the engine's models.
func (e *Engine) Close() error {
	var first error
	if e.leafModel != nil {
		if err := e.leafModel.Close(); err != nil {
			first = err
		}
		e.leafModel = nil
	}
	if e.rootModel != nil {
		if err := e.rootModel.Close(); err != nil && first == nil {
			first = err
		}
		e.rootModel = nil
	}
	return first
}
