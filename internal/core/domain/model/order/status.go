package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a lifecycle transition is attempted
// from a state that does not allow it. The order is left unchanged.
var ErrInvalidTransition = errors.New("invalid order status transition")

// Status represents the coarse lifecycle state of an order as seen by the
// surrounding application.
//
// State transitions:
//
//	Scheduled ──> Dispatched ──> Delivered (terminal)
//	    ^              │
//	    └── Returned ──┘   (returned orders reschedule for redelivery)
//
//	any non-terminal ──> Cancelled (terminal)
//
// Picking does not change the coarse status: a picked order is still
// Scheduled. The fine-grained progress lives in Substatus.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Scheduled is the initial status of an order awaiting dispatch.
	Scheduled

	// Dispatched indicates the order has left the warehouse. Product stock
	// has been decremented for all allocated quantities.
	Dispatched

	// Delivered indicates the order was confirmed at the client.
	// This is a terminal status.
	Delivered

	// Cancelled indicates the order was aborted before delivery.
	// This is a terminal status; cancelled orders are never deleted.
	Cancelled

	// Returned indicates the client refused the delivery. A returned order
	// immediately reschedules itself back to Scheduled, so Returned appears
	// in the audit trail rather than as a resting state.
	Returned
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Scheduled:     "Scheduled",
		Dispatched:    "Dispatched",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
		Returned:      "Returned",
	}
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == StatusUnknown {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Substatus represents the fine-grained progress of an order through the
// warehouse workflow. Substatus drives the state machine; the coarse Status
// is derived from it.
//
// Substatus transitions:
//
//	Scheduled ──> Picked ──> Dispatched ──> Delivered (terminal)
//	                              │
//	                              └──> Returned (reschedules to Scheduled)
type Substatus int

const (
	// SubstatusUnknown represents an invalid or undefined substatus.
	SubstatusUnknown Substatus = iota

	// SubstatusScheduled marks an order waiting to be picked.
	SubstatusScheduled

	// SubstatusPicked marks an order assembled and ready for dispatch.
	SubstatusPicked

	// SubstatusDispatched marks an order on its way to the client.
	SubstatusDispatched

	// SubstatusDelivered marks an order confirmed at the client.
	SubstatusDelivered

	// SubstatusReturned marks an order refused by the client.
	SubstatusReturned
)

func substatusStrings() map[Substatus]string {
	return map[Substatus]string{
		SubstatusUnknown:    "Unknown",
		SubstatusScheduled:  "Scheduled",
		SubstatusPicked:     "Picked",
		SubstatusDispatched: "Dispatched",
		SubstatusDelivered:  "Delivered",
		SubstatusReturned:   "Returned",
	}
}

// Validate checks if the Substatus value is one of the defined substatuses.
func (s Substatus) Validate() error {
	if _, ok := substatusStrings()[s]; !ok || s == SubstatusUnknown {
		return fmt.Errorf("%w: %d is not a valid substatus", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the human-readable name of the substatus.
func (s Substatus) String() string {
	if str, ok := substatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pick transitions the substatus to Picked.
//
// Valid transitions:
//   - Scheduled -> Picked
func (s Substatus) Pick() (Substatus, error) {
	if s != SubstatusScheduled {
		return 0, fmt.Errorf("%w: cannot pick from %s", ErrInvalidTransition, s)
	}
	return SubstatusPicked, nil
}

// Dispatch transitions the substatus to Dispatched.
//
// Valid transitions:
//   - Picked -> Dispatched
func (s Substatus) Dispatch() (Substatus, error) {
	if s != SubstatusPicked {
		return 0, fmt.Errorf("%w: cannot dispatch from %s", ErrInvalidTransition, s)
	}
	return SubstatusDispatched, nil
}

// Deliver transitions the substatus to Delivered.
//
// Valid transitions:
//   - Dispatched -> Delivered
func (s Substatus) Deliver() (Substatus, error) {
	if s != SubstatusDispatched {
		return 0, fmt.Errorf("%w: cannot deliver from %s", ErrInvalidTransition, s)
	}
	return SubstatusDelivered, nil
}

// Return transitions the substatus to Returned.
//
// Valid transitions:
//   - Dispatched -> Returned
func (s Substatus) Return() (Substatus, error) {
	if s != SubstatusDispatched {
		return 0, fmt.Errorf("%w: cannot return from %s", ErrInvalidTransition, s)
	}
	return SubstatusReturned, nil
}

// statusFor derives the coarse status from a substatus. Picked orders remain
// Scheduled at the coarse level.
func statusFor(sub Substatus) Status {
	switch sub {
	case SubstatusScheduled, SubstatusPicked:
		return Scheduled
	case SubstatusDispatched:
		return Dispatched
	case SubstatusDelivered:
		return Delivered
	case SubstatusReturned:
		return Returned
	default:
		return StatusUnknown
	}
}
