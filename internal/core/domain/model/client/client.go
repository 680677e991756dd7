package client

import (
	"errors"
	"fmt"
	"time"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client instance was not
// created through the NewClient factory method.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Client represents a retail point receiving recurring product deliveries.
// Each client carries a standard order quantity (the units delivered per
// cycle) and a standard periodicity (the days between deliveries).
//
// Client follows these invariants:
//   - Must have a valid unique identifier and non-empty name
//   - Standard quantity is never negative
//   - Standard periodicity is strictly positive
//   - Can only be created through NewClient or RestoreClient
//
// The recalibration flow mutates the standard quantity after confirmed
// deliveries whose cadence drifted out of tolerance; every confirmed delivery
// moves the last effective delivery date forward.
type Client struct {
	id                        kernel.UUID
	name                      string
	standardQuantity          int
	standardPeriodicityDays   int
	lastEffectiveDeliveryDate *time.Time
	active                    bool
	isConstructed             bool
}

// NewClient creates a new Client with validation. The client starts active
// with no delivery history.
func NewClient(id kernel.UUID, name string, standardQuantity, standardPeriodicityDays int) (*Client, error) {
	c := &Client{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setStandardQuantity(standardQuantity),
		c.setStandardPeriodicityDays(standardPeriodicityDays),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a Client from persistence, including its
// delivery history and active flag. Used exclusively by repository adapters.
func RestoreClient(
	id kernel.UUID,
	name string,
	standardQuantity, standardPeriodicityDays int,
	lastEffectiveDeliveryDate *time.Time,
	active bool,
) (*Client, error) {
	c, err := NewClient(id, name, standardQuantity, standardPeriodicityDays)
	if err != nil {
		return nil, err
	}

	c.lastEffectiveDeliveryDate = lastEffectiveDeliveryDate
	c.active = active
	return c, nil
}

// Validate ensures the Client instance was properly constructed.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's display name.
func (c *Client) Name() string {
	return c.name
}

// StandardQuantity returns the client's standard order quantity (Qp).
func (c *Client) StandardQuantity() int {
	return c.standardQuantity
}

// StandardPeriodicityDays returns the client's standard delivery periodicity
// in days (Pp).
func (c *Client) StandardPeriodicityDays() int {
	return c.standardPeriodicityDays
}

// LastEffectiveDeliveryDate returns the date of the last confirmed delivery,
// or nil when the client has never received one.
func (c *Client) LastEffectiveDeliveryDate() *time.Time {
	return c.lastEffectiveDeliveryDate
}

// Active reports whether the client participates in scheduled replenishment.
func (c *Client) Active() bool {
	return c.active
}

// IsDue reports whether a replenishment order should be created for the
// client as of the given date. A client with no delivery history is due
// immediately; otherwise the client is due once the standard periodicity has
// elapsed since the last effective delivery.
func (c *Client) IsDue(asOf time.Time) bool {
	if !c.active {
		return false
	}
	if c.lastEffectiveDeliveryDate == nil {
		return true
	}

	next := c.lastEffectiveDeliveryDate.AddDate(0, 0, c.standardPeriodicityDays)
	return !asOf.Before(next)
}

// RecordDelivery moves the last effective delivery date forward.
// Called on every confirmed delivery, whether or not recalibration fired.
func (c *Client) RecordDelivery(at time.Time) {
	c.lastEffectiveDeliveryDate = &at
}

// ApplyRecalibration replaces the standard quantity with the recalibrated
// value. Returns the previous quantity for event reporting.
func (c *Client) ApplyRecalibration(newQuantity int) (previous int, err error) {
	if newQuantity < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"standard quantity",
			fmt.Errorf("%d is negative", newQuantity),
		)
	}

	previous = c.standardQuantity
	c.standardQuantity = newQuantity
	return previous, nil
}

// Deactivate removes the client from scheduled replenishment.
func (c *Client) Deactivate() {
	c.active = false
}

// Activate returns the client to scheduled replenishment.
func (c *Client) Activate() {
	c.active = true
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Client) setStandardQuantity(standardQuantity int) error {
	if standardQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"standard quantity",
			fmt.Errorf("%d is negative", standardQuantity),
		)
	}
	c.standardQuantity = standardQuantity
	return nil
}

func (c *Client) setStandardPeriodicityDays(standardPeriodicityDays int) error {
	if standardPeriodicityDays <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"standard periodicity",
			fmt.Errorf("%d is not greater than 0", standardPeriodicityDays),
		)
	}
	c.standardPeriodicityDays = standardPeriodicityDays
	return nil
}
