package commands

import (
	"errors"
	"time"

	"replenishment/internal/pkg/errs"
	"replenishment/internal/pkg/guard"
)

// ErrScheduleDueOrdersCommandIsNotConstructed is returned when the command
// was not created through its constructor.
var ErrScheduleDueOrdersCommandIsNotConstructed = errors.New(
	"ScheduleDueOrdersCommand must be created via NewScheduleDueOrdersCommand constructor",
)

// ScheduleDueOrdersCommand represents one run of the replenishment scheduler:
// create a standard order for every active client whose periodicity has
// elapsed as of the given date.
type ScheduleDueOrdersCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewScheduleDueOrdersCommand creates a command for one scheduler run.
func NewScheduleDueOrdersCommand(asOf time.Time) (ScheduleDueOrdersCommand, error) {
	cmd := ScheduleDueOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAsOf(asOf); err != nil {
		return ScheduleDueOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleDueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDueOrdersCommandIsNotConstructed)
}

// AsOf returns the date the due check runs against.
func (c ScheduleDueOrdersCommand) AsOf() time.Time {
	return c.asOf
}

func (c *ScheduleDueOrdersCommand) setAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return errs.NewValueIsRequiredError("as of date")
	}
	c.asOf = asOf
	return nil
}
