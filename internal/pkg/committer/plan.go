// Package committer applies an ordered list of worksheet writes.
//
// The spreadsheet has no transactions. A Plan therefore runs its steps in
// order and stops at the first failure. When a step fails after earlier steps
// were applied, the error reports which steps made it to the workbook so the
// caller can surface the divergence instead of hiding it.
//
// # Usage Pattern
//
//	plan := committer.NewPlan()
//	plan.Add("replace stock", func(ctx context.Context) error {
//	    return repo.ReplaceState(ctx, state)
//	})
//	plan.Add("append history", func(ctx context.Context) error {
//	    return repo.AppendHistory(ctx, entry)
//	})
//	if err := committer.Apply(ctx, plan); errors.Is(err, committer.ErrPartial) {
//	    // state written, ledger missing
//	}
package committer

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrPartial is matched by an ApplyError raised after at least one step was applied.
var ErrPartial = errors.New("plan partially applied")

// Step is one write of a Plan.
type Step struct {
	Name  string
	Apply func(ctx context.Context) error
}

// Plan collects writes in the order they must reach the workbook.
type Plan struct {
	steps []Step
}

// NewPlan creates a new empty Plan.
func NewPlan() *Plan {
	return &Plan{steps: make([]Step, 0)}
}

// Add appends a step. Nil functions are silently ignored for convenience.
func (p *Plan) Add(name string, fn func(ctx context.Context) error) {
	if fn != nil {
		p.steps = append(p.steps, Step{Name: name, Apply: fn})
	}
}

// IsEmpty returns true if the plan has no steps.
func (p *Plan) IsEmpty() bool {
	return len(p.steps) == 0
}

// Count returns the number of steps in the plan.
func (p *Plan) Count() int {
	return len(p.steps)
}

// ApplyError reports the failed step and the steps applied before it.
type ApplyError struct {
	Step    string
	Applied []string
	Err     error
}

func (e *ApplyError) Error() string {
	if len(e.Applied) == 0 {
		return fmt.Sprintf("failed to %s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("failed to %s after %s: %v", e.Step, strings.Join(e.Applied, ", "), e.Err)
}

// Unwrap exposes the step error, plus ErrPartial when earlier steps were applied.
func (e *ApplyError) Unwrap() []error {
	if len(e.Applied) == 0 {
		return []error{e.Err}
	}
	return []error{ErrPartial, e.Err}
}

// Apply runs the steps in order and stops at the first failure.
func Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil // Nothing to apply
	}

	applied := make([]string, 0, plan.Count())
	for _, step := range plan.steps {
		if err := ctx.Err(); err != nil {
			return &ApplyError{Step: step.Name, Applied: applied, Err: err}
		}
		if err := step.Apply(ctx); err != nil {
			return &ApplyError{Step: step.Name, Applied: applied, Err: err}
		}
		applied = append(applied, step.Name)
	}
	return nil
}
