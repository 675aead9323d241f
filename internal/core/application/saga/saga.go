// Package saga executes ordered, compensatable step sequences for cascades
// that span aggregates. The persistence layer offers no cross-aggregate
// transaction, so a failed step triggers the compensations of every step
// already applied, in reverse order.
package saga

import (
	"context"
	"fmt"
	"log/slog"
)

// Step is one unit of a cascade. Execute applies the mutation; Compensate
// undoes it when a later step fails. Compensate must be safe to call exactly
// once after a successful Execute.
type Step struct {
	Name       string
	Execute    func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// StepError reports which step failed and whether the compensations of the
// previously applied steps all succeeded.
type StepError struct {
	StepName    string
	Compensated bool
	Cause       error
}

func (e *StepError) Error() string {
	msg := fmt.Sprintf("saga step %s failed", e.StepName)
	if e.Compensated {
		msg += ", prior steps compensated"
	} else {
		msg += ", compensation incomplete"
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

// Saga runs steps sequentially and rolls back on failure.
type Saga struct {
	logger *slog.Logger
	steps  []Step
}

// New creates a saga over the given steps.
func New(logger *slog.Logger, steps []Step) *Saga {
	return &Saga{
		logger: logger.With(slog.String("component", "saga")),
		steps:  steps,
	}
}

// Run executes every step in order. On the first failure it compensates the
// already-applied steps in reverse and returns a StepError. A compensation
// failure is logged and recorded on the error but does not stop the
// remaining compensations: the recoverable inconsistency is surfaced, not
// hidden.
func (s *Saga) Run(ctx context.Context) error {
	applied := make([]Step, 0, len(s.steps))

	for _, step := range s.steps {
		if err := step.Execute(ctx); err != nil {
			compensated := s.compensate(ctx, applied)
			return &StepError{StepName: step.Name, Compensated: compensated, Cause: err}
		}
		applied = append(applied, step)
	}

	return nil
}

func (s *Saga) compensate(ctx context.Context, applied []Step) bool {
	complete := true
	for i := len(applied) - 1; i >= 0; i-- {
		step := applied[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			complete = false
			s.logger.Error("compensation failed",
				slog.String("step", step.Name),
				slog.Any("error", err))
		}
	}
	return complete
}
