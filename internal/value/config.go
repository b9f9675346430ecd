package value

import (
	"errors"
	"fmt"

	"deepholdem/internal/poker"
)

// Config carries the solver parameters the engines share. Values should
// match the settings the models were trained under.
type Config struct {
	// Stack is the chip depth used to normalize pot-size features and to
	// bound returned values to ±Stack/pot.
	Stack float32

	// SkipIters is the number of warm-up iterations whose root-mode output
	// is excluded from the running accumulator.
	SkipIters int

	// LeafIters is the per-round budget of early iterations served by the
	// cheap current-round leaf model. Rounds absent from the map get 0.
	LeafIters map[poker.Round]int

	// ModelDir is where pretrained weights live; consumed by the model
	// loader wiring, not by the engines themselves.
	ModelDir string
}

// DefaultConfig mirrors the reference training settings.
func DefaultConfig() Config {
	return Config{
		Stack:     20000,
		SkipIters: 500,
		LeafIters: map[poker.Round]int{},
	}
}

// Validate rejects configurations the engines cannot run under.
func (c Config) Validate() error {
	if c.Stack <= 0 {
		return errors.New("stack must be > 0")
	}
	if c.SkipIters < 0 {
		return errors.New("skip iterations cannot be negative")
	}
	for r, n := range c.LeafIters {
		if n < 0 {
			return fmt.Errorf("leaf iterations for %s cannot be negative", r)
		}
	}
	return nil
}

func (c Config) leafIters(r poker.Round) int {
	return c.LeafIters[r]
}
