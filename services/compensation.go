package services

import (
	"context"
	"log/slog"
)

type undoStep struct {
	name string
	fn   func(ctx context.Context) error
}

// compensation records how to undo the store writes made so far by a
// multi-key operation. The store has no transactions, so a failed step
// rolls back the earlier ones best-effort.
type compensation struct {
	steps  []undoStep
	logger *slog.Logger
}

func newCompensation(logger *slog.Logger) *compensation {
	return &compensation{logger: logger}
}

func (c *compensation) push(name string, fn func(ctx context.Context) error) {
	c.steps = append(c.steps, undoStep{name: name, fn: fn})
}

// rollback runs the recorded steps in reverse order. It keeps going past
// failures and detaches from ctx cancellation so an aborted request still
// cleans up.
func (c *compensation) rollback(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	for i := len(c.steps) - 1; i >= 0; i-- {
		step := c.steps[i]
		if err := step.fn(ctx); err != nil {
			c.logger.Error("compensation step failed", "step", step.name, "error", err)
		}
	}
	c.steps = nil
}
