package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrReconcileRatingsCommandIsNotConstructed = errors.New(
	"ReconcileRatingsCommand must be created via NewReconcileRatingsCommand constructor",
)

// ReconcileRatingsCommand requests a sweep over the whole catalog,
// recomputing every restaurant's rating aggregate from its reviews.
// Issued periodically by the rating reconciliation job.
type ReconcileRatingsCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileRatingsCommand creates a rating reconciliation command.
func NewReconcileRatingsCommand() (ReconcileRatingsCommand, error) {
	return ReconcileRatingsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileRatingsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileRatingsCommandIsNotConstructed)
}
