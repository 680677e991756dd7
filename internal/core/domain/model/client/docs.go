// Package client provides the Client aggregate for the replenishment domain.
// A client is a retail point with a standard order quantity (Qp) and standard
// delivery periodicity in days (Pp). Confirmed deliveries move the last
// effective delivery date, and out-of-tolerance delivery cadence recalibrates
// the standard quantity.
package client
