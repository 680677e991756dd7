// Package order provides the Order aggregate and its lifecycle state machine
// for the replenishment domain.
//
// The package includes:
//   - Order: the aggregate root holding the allocation and walking the
//     lifecycle Scheduled -> Picked -> Dispatched -> Delivered
//   - Status and Substatus: coarse and fine-grained state machines that
//     enforce valid transitions
//   - Item: one allocated product line, with its delivered quantity
//   - StatusChange: the append-only audit trail entry
//
// Key business rules:
//   - Item allocations always sum to the requested total exactly
//   - Dispatch verifies stock coverage and fails with the offending items
//   - Returned orders reschedule themselves to the next business day
//   - Delivered and Cancelled are terminal; orders are never deleted
package order
