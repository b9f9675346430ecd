package value

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"deepholdem/internal/poker"
)

// Registry maps rounds to their value engines. Built once at process start,
// read-only afterwards.
type Registry struct {
	engines map[poker.Round]*Engine
}

// BuildRegistry attempts engine construction for every applicable round and
// collects the successes. Failures are returned per round instead of being
// swallowed; a round that failed surfaces later as ErrEngineNotFound.
func BuildRegistry(cfg Config, loader ModelLoader) (*Registry, map[poker.Round]error) {
	engines := make(map[poker.Round]*Engine)
	failures := make(map[poker.Round]error)
	for _, round := range poker.ApplicableRounds() {
		eng, err := NewEngine(round, cfg, loader)
		if err != nil {
			failures[round] = err
			logrus.WithField("round", round.String()).WithError(err).
				Warn("value engine not built")
			continue
		}
		engines[round] = eng
		logrus.WithField("round", round.String()).Info("value engine ready")
	}
	return &Registry{engines: engines}, failures
}

// EngineFor returns the engine serving the round, or ErrEngineNotFound.
func (r *Registry) EngineFor(round poker.Round) (*Engine, error) {
	eng, ok := r.engines[round]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEngineNotFound, round)
	}
	return eng, nil
}

// Rounds lists the rounds with a built engine, ascending.
func (r *Registry) Rounds() []poker.Round {
	out := make([]poker.Round, 0, len(r.engines))
	for round := range r.engines {
		out = append(out, round)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Close releases every engine's models.
func (r *Registry) Close() error {
	var first error
	for _, eng := range r.engines {
		if err := eng.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
