package order

import (
	"errors"
	"fmt"
	"time"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Type distinguishes how an order came to be.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// Standard orders are created by the replenishment scheduler with the
	// client's standard quantity.
	Standard

	// Changed orders are standard orders whose quantity was adjusted
	// manually before dispatch.
	Changed

	// Special orders are created manually outside the replenishment cycle.
	Special
)

func typeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "Unknown",
		Standard:    "Standard",
		Changed:     "Changed",
		Special:     "Special",
	}
}

// Validate checks if the Type value is one of the defined order types.
func (t Type) Validate() error {
	if _, ok := typeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%d is not a valid type", t))
	}
	return nil
}

// String returns the human-readable name of the order type.
func (t Type) String() string {
	if str, ok := typeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// StatusChange is one entry of an order's immutable audit trail. Every
// lifecycle transition appends exactly one entry.
type StatusChange struct {
	FromStatus    Status
	FromSubstatus Substatus
	ToStatus      Status
	ToSubstatus   Substatus
	ChangedAt     time.Time
	Note          string
}

// Order is the aggregate root for a single replenishment delivery. It holds
// the allocation produced by the distribution engine and walks the lifecycle
// Scheduled -> Picked -> Dispatched -> Delivered, with side branches for
// returns and cancellation.
//
// Order follows these invariants:
//   - The sum of item allocations equals the requested total exactly
//   - Status and substatus only move through defined transitions
//   - Every transition appends a StatusChange entry
//   - Delivered and Cancelled are terminal; orders are never deleted
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id                  kernel.UUID
	clientID            kernel.UUID
	orderType           Type
	requestedTotalUnits int
	items               []Item
	status              Status
	substatus           Substatus
	scheduledDate       time.Time
	actualDeliveryDate  *time.Time
	history             []StatusChange
	isConstructed       bool
}

// NewOrder creates a new Order in Scheduled status. The requested total is
// derived from the item allocations, so the allocation-sum invariant holds by
// construction.
func NewOrder(id kernel.UUID, clientID kernel.UUID, orderType Type, scheduledDate time.Time, items []Item) (*Order, error) {
	o := &Order{
		status:        Scheduled,
		substatus:     SubstatusScheduled,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setType(orderType),
		o.setScheduledDate(scheduledDate),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status, delivery date, and audit trail. Used exclusively by repository
// adapters.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	orderType Type,
	scheduledDate time.Time,
	items []Item,
	status Status,
	substatus Substatus,
	actualDeliveryDate *time.Time,
	history []StatusChange,
) (*Order, error) {
	o, err := NewOrder(id, clientID, orderType, scheduledDate, items)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), substatus.Validate()); err != nil {
		return nil, err
	}

	o.status = status
	o.substatus = substatus
	o.actualDeliveryDate = actualDeliveryDate
	o.history = history
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the client receiving this order.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Type returns how the order originated.
func (o *Order) Type() Type {
	return o.orderType
}

// RequestedTotalUnits returns the total quantity split across items.
func (o *Order) RequestedTotalUnits() int {
	return o.requestedTotalUnits
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the coarse lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Substatus returns the fine-grained workflow progress.
func (o *Order) Substatus() Substatus {
	return o.substatus
}

// ScheduledDate returns the date the order is planned for delivery.
func (o *Order) ScheduledDate() time.Time {
	return o.scheduledDate
}

// ActualDeliveryDate returns the confirmed delivery date, or nil before
// delivery.
func (o *Order) ActualDeliveryDate() *time.Time {
	return o.actualDeliveryDate
}

// History returns a copy of the audit trail.
func (o *Order) History() []StatusChange {
	history := make([]StatusChange, len(o.history))
	copy(history, o.history)
	return history
}

// TotalDelivered sums the delivered quantities across items. Returns zero
// before the delivery is confirmed.
func (o *Order) TotalDelivered() int {
	total := 0
	for _, item := range o.items {
		if item.deliveredQuantity != nil {
			total += *item.deliveredQuantity
		}
	}
	return total
}

// StockDecremented reports whether product stock is currently held by this
// order. Stock is decremented on dispatch and released again on return;
// delivered orders have consumed it.
func (o *Order) StockDecremented() bool {
	return o.substatus == SubstatusDispatched
}

// MarkPicked marks the order as assembled and ready for dispatch.
// The coarse status stays Scheduled.
func (o *Order) MarkPicked(now time.Time) error {
	newSubstatus, err := o.substatus.Pick()
	if err != nil {
		return err
	}

	o.recordChange(newSubstatus, now, "")
	return nil
}

// Dispatch moves the order out of the warehouse after verifying that every
// item's allocation is covered by the supplied stock balances. On a stock
// shortfall the order stays Picked and an *InsufficientStockError lists the
// offending items; the caller decrements the actual product stock in the same
// transaction as the status change.
func (o *Order) Dispatch(now time.Time, stockByProduct map[kernel.UUID]int) error {
	newSubstatus, err := o.substatus.Dispatch()
	if err != nil {
		return err
	}

	var insufficient []InsufficientItem
	for _, item := range o.items {
		available := stockByProduct[item.productID]
		if item.allocatedQuantity > available {
			insufficient = append(insufficient, InsufficientItem{
				ProductID: item.productID,
				Allocated: item.allocatedQuantity,
				Available: available,
			})
		}
	}
	if len(insufficient) > 0 {
		return &InsufficientStockError{Items: insufficient}
	}

	o.recordChange(newSubstatus, now, "")
	return nil
}

// ConfirmDelivery records the delivery at the client: the actual delivery
// date and the per-item delivered quantities, which may differ from the
// allocations. Every item must have an entry in deliveredByProduct; on any
// missing or negative quantity the order is left unchanged.
func (o *Order) ConfirmDelivery(at time.Time, deliveredByProduct map[kernel.UUID]int) error {
	newSubstatus, err := o.substatus.Deliver()
	if err != nil {
		return err
	}

	for _, item := range o.items {
		delivered, ok := deliveredByProduct[item.productID]
		if !ok {
			return errs.NewValueIsRequiredErrorWithCause(
				"delivered quantity",
				fmt.Errorf("no quantity for product %s", item.productID),
			)
		}
		if delivered < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"delivered quantity",
				fmt.Errorf("%d is negative for product %s", delivered, item.productID),
			)
		}
	}

	for i := range o.items {
		delivered := deliveredByProduct[o.items[i].productID]
		o.items[i].deliveredQuantity = &delivered
	}
	o.actualDeliveryDate = &at

	o.recordChange(newSubstatus, at, "")
	return nil
}

// Return records that the client refused the delivery and reschedules the
// order for the next business day. Two audit entries are appended: the return
// itself and the reschedule back to Scheduled. The caller restores product
// stock in the same transaction.
func (o *Order) Return(now time.Time, reason string) error {
	newSubstatus, err := o.substatus.Return()
	if err != nil {
		return err
	}

	o.recordChange(newSubstatus, now, reason)

	o.scheduledDate = nextBusinessDay(now)
	o.recordChange(SubstatusScheduled, now, "rescheduled for redelivery")
	return nil
}

// Cancel aborts the order from any non-terminal state. Cancelled is terminal;
// the order is kept for audit, never deleted. The caller restores product
// stock when StockDecremented reported true before the call.
func (o *Order) Cancel(now time.Time, note string) error {
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: cannot cancel from %s", ErrInvalidTransition, o.status)
	}

	o.history = append(o.history, StatusChange{
		FromStatus:    o.status,
		FromSubstatus: o.substatus,
		ToStatus:      Cancelled,
		ToSubstatus:   o.substatus,
		ChangedAt:     now,
		Note:          note,
	})
	o.status = Cancelled
	return nil
}

// recordChange applies a substatus transition, derives the coarse status, and
// appends the audit entry.
func (o *Order) recordChange(to Substatus, at time.Time, note string) {
	o.history = append(o.history, StatusChange{
		FromStatus:    o.status,
		FromSubstatus: o.substatus,
		ToStatus:      statusFor(to),
		ToSubstatus:   to,
		ChangedAt:     at,
		Note:          note,
	})
	o.status = statusFor(to)
	o.substatus = to
}

// nextBusinessDay returns the first non-weekend day strictly after t.
func nextBusinessDay(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return fmt.Errorf("client ID: %w", err)
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduled date")
	}
	o.scheduledDate = scheduledDate
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := 0
	for _, item := range items {
		if err := item.productID.Validate(); err != nil {
			return fmt.Errorf("item product ID: %w", err)
		}
		total += item.allocatedQuantity
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.requestedTotalUnits = total
	return nil
}
