// Package kernel contains shared value objects used across the domain model.
// It currently provides the UUID value object that identifies all aggregates
// (products, clients, orders) in the replenishment system.
//
// Kernel types are immutable value objects with constructor validation.
// Zero values are invalid and fail Validate(), ensuring identifiers always
// originate from one of the provided factory functions.
package kernel
