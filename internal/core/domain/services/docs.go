// Package services contains the pure domain services of the replenishment
// engine: the Allocator, which splits order totals across product variants
// with zero rounding drift, and the Recalibrator, which adapts a client's
// standard order quantity to its realized delivery cadence.
//
// Both services are stateless and side-effect free; command handlers wire
// their results into aggregates and persistence.
package services
