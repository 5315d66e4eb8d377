package optim

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/born-ml/axon/internal/nn"
	"github.com/born-ml/axon/internal/parallel"
	"github.com/born-ml/axon/internal/tensor"
)

// ErrInvalidTarget is returned by Train for a negative or non-finite target error.
var ErrInvalidTarget = errors.New("target error must be a finite value ≥ 0")

// Result describes how a training run terminated.
type Result[T tensor.Float] struct {
	Outcome    Outcome // Terminal state
	Iterations int     // Number of completed epochs
	Error      T       // Mean error after the last epoch
}

// Trainer drives whole-dataset gradient descent on a network.
//
// Each epoch has two phases separated by a join barrier: a parallel map in
// which every example computes its gradient masks against the current
// weights, and a sequential aggregation that sums the masks and applies them.
// Workers never observe weights while they are being updated.
//
// Summation follows example order, but a caller reordering the dataset
// changes the floating-point accumulation order; results are only
// reproducible up to rounding across such changes.
type Trainer[T tensor.Float] struct {
	net *nn.Network[T]
	cfg Config
}

// NewTrainer creates a trainer that mutates net in place.
//
// Zero fields of config take their defaults (see DefaultConfig).
func NewTrainer[T tensor.Float](net *nn.Network[T], config Config) *Trainer[T] {
	return &Trainer[T]{
		net: net,
		cfg: config.withDefaults(),
	}
}

// Network returns the network being trained.
func (t *Trainer[T]) Network() *nn.Network[T] {
	return t.net
}

// Config returns the effective configuration.
func (t *Trainer[T]) Config() Config {
	return t.cfg
}

// Train runs epochs until the mean error is ≤ target.
//
// It stops early with MaxIterationsReached when Config.MaxIterations is set,
// and with Diverged (returning an error wrapping nn.ErrDomainViolation) when
// Config.StopOnNonFinite is set and the error stops being finite. Without
// MaxIterations an unreachable target never returns.
//
// The dataset is validated before any weight is touched.
func (t *Trainer[T]) Train(target T, data []nn.Example[T]) (Result[T], error) {
	if target < 0 || !tensor.IsFinite(target) {
		return Result[T]{}, fmt.Errorf("Train: %w: got %v", ErrInvalidTarget, target)
	}
	if err := t.net.ValidateDataset(data); err != nil {
		return Result[T]{}, fmt.Errorf("Train: %w", err)
	}

	log := t.cfg.Logger.With(
		slog.String("network", t.net.String()),
		slog.Int("examples", len(data)),
	)
	log.Debug("training started",
		slog.Float64("target", float64(target)),
		slog.Float64("lr", t.cfg.LR),
		slog.Int("max_iterations", t.cfg.MaxIterations),
	)

	result := Result[T]{Outcome: Iterating}
	for result.Outcome == Iterating {
		meanErr, err := t.step(data)
		if err != nil {
			return result, fmt.Errorf("Train: epoch %d: %w", result.Iterations+1, err)
		}
		result.Iterations++
		result.Error = meanErr

		if t.cfg.LogEvery > 0 && result.Iterations%t.cfg.LogEvery == 0 {
			log.Debug("epoch",
				slog.Int("epoch", result.Iterations),
				slog.Float64("error", float64(meanErr)),
			)
		}

		switch {
		case meanErr <= target:
			result.Outcome = Converged
		case t.cfg.StopOnNonFinite && !tensor.IsFinite(meanErr):
			result.Outcome = Diverged
		case t.cfg.MaxIterations > 0 && result.Iterations >= t.cfg.MaxIterations:
			result.Outcome = MaxIterationsReached
		}
	}

	log.Info("training finished",
		slog.String("outcome", result.Outcome.String()),
		slog.Int("epochs", result.Iterations),
		slog.Float64("error", float64(result.Error)),
	)

	if result.Outcome == Diverged {
		return result, fmt.Errorf("Train: epoch %d: mean error %v: %w",
			result.Iterations, result.Error, nn.ErrDomainViolation)
	}
	return result, nil
}

// Step runs a single epoch over data and returns the mean error afterwards.
func (t *Trainer[T]) Step(data []nn.Example[T]) (T, error) {
	if err := t.net.ValidateDataset(data); err != nil {
		return 0, fmt.Errorf("Step: %w", err)
	}
	return t.step(data)
}

// MeanError returns the mean over data of the squared error between the
// network output and the raw target.
func (t *Trainer[T]) MeanError(data []nn.Example[T]) (T, error) {
	if err := t.net.ValidateDataset(data); err != nil {
		return 0, fmt.Errorf("MeanError: %w", err)
	}
	return t.meanError(data), nil
}

type gradResult[T tensor.Float] struct {
	masks []*tensor.Matrix[T]
	err   error
}

func (t *Trainer[T]) step(data []nn.Example[T]) (T, error) {
	lr := T(t.cfg.LR)

	// Phase 1: parallel map over frozen weights. Map returns only after
	// every worker has finished.
	results := parallel.Map(len(data), func(i int) gradResult[T] {
		masks, err := t.net.Gradients(data[i].Input, data[i].Target, lr)
		return gradResult[T]{masks: masks, err: err}
	}, t.cfg.Parallel)

	// Phase 2: sequential aggregation.
	sum := results[0].masks
	if results[0].err != nil {
		return 0, results[0].err
	}
	for _, r := range results[1:] {
		if r.err != nil {
			return 0, r.err
		}
		for k, mask := range r.masks {
			sum[k].AddRowsInPlace(mask, mask.Rows())
		}
	}
	if err := t.net.ApplyGradients(sum); err != nil {
		return 0, err
	}

	return t.meanError(data), nil
}

func (t *Trainer[T]) meanError(data []nn.Example[T]) T {
	errs := parallel.Map(len(data), func(i int) T {
		// Shapes were validated by the caller.
		e, _ := t.net.Error(data[i].Input, data[i].Target)
		return e
	}, t.cfg.Parallel)

	var total T
	for _, e := range errs {
		total += e
	}
	return total / T(len(data))
}
