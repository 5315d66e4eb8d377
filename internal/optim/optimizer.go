// Package optim implements the training coordinator for axon networks.
//
// Training runs whole-dataset gradient descent: every epoch computes the
// gradient masks of all examples in parallel against frozen weights, joins,
// applies the summed masks, then measures the mean error.
//
// Example usage:
//
//	trainer := optim.NewTrainer(net, optim.DefaultConfig())
//	result, err := trainer.Train(0.01, data)
//	if err != nil {
//	    return err
//	}
//	if result.Outcome != optim.Converged {
//	    log.Printf("stopped after %d epochs at error %v", result.Iterations, result.Error)
//	}
package optim

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/born-ml/axon/internal/parallel"
)

// DefaultLR is the learning rate used when Config.LR is zero.
const DefaultLR = 0.001

// Config holds configuration for a Trainer.
type Config struct {
	LR              float64         // Learning rate (default: DefaultLR)
	MaxIterations   int             // Epoch cap; 0 trains until the target error is reached
	Parallel        parallel.Config // Worker pool for the per-example gradient map
	StopOnNonFinite bool            // Stop with Diverged when the mean error becomes NaN or ±Inf
	LogEvery        int             // Log a debug record every N epochs (0 = only the final record)
	Logger          *slog.Logger    // Destination for training logs (default: discard)
}

// DefaultConfig returns defaults: DefaultLR, no epoch cap, a pool sized to the
// available cores.
func DefaultConfig() Config {
	return Config{
		LR:       DefaultLR,
		Parallel: parallel.DefaultConfig(),
	}
}

func (c Config) withDefaults() Config {
	if c.LR == 0 {
		c.LR = DefaultLR
	}
	if c.Parallel == (parallel.Config{}) {
		c.Parallel = parallel.DefaultConfig()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Outcome is the terminal state of a training run.
type Outcome int

// Training outcomes.
const (
	// Iterating is the state of a run that has not terminated yet.
	Iterating Outcome = iota
	// Converged means the mean error reached the target.
	Converged
	// MaxIterationsReached means the epoch cap stopped training first.
	MaxIterationsReached
	// Diverged means the mean error became non-finite (only with StopOnNonFinite).
	Diverged
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case MaxIterationsReached:
		return "max iterations reached"
	case Diverged:
		return "diverged"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}
