package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/pkg/errs"
)

// ErrInvalidInterval is returned when the effective delivery interval is zero
// or negative (clock skew, duplicate confirmation). Recalibration is skipped;
// the delivery confirmation itself is unaffected.
var ErrInvalidInterval = errors.New("effective delivery interval must be positive")

// RecalibrationEvent is emitted whenever a client's standard quantity is
// recalibrated after an out-of-tolerance delivery interval. The engine does
// not persist events; they are handed to the configured publisher.
type RecalibrationEvent struct {
	ClientID           kernel.UUID
	EffectiveDeltaDays int
	PreviousQp         int
	NewQp              int
	TriggeredAt        time.Time
}

// Recalibrator is a pure domain service implementing the adaptive
// recalibration of a client's standard order quantity (Qp).
//
// After each confirmed delivery the realized interval since the previous
// delivery is measured. Intervals within a quarter-period band around the
// client's standard periodicity (Pp) are routine jitter and leave Qp alone.
// A sustained drift outside the band recalibrates Qp: the delivered quantity
// is first normalized to a weekly turnover rate, then projected back onto the
// client's own periodicity. The week-rate pivot keeps clients with different
// periodicities comparable.
type Recalibrator struct{}

// NewRecalibrator creates a new Recalibrator instance.
func NewRecalibrator() Recalibrator {
	return Recalibrator{}
}

// EffectiveDeltaDays measures the realized interval between two deliveries,
// rounded to whole days.
func (Recalibrator) EffectiveDeltaDays(current, previous time.Time) int {
	return int(math.Round(current.Sub(previous).Hours() / 24))
}

// OutOfTolerance reports whether a realized interval falls outside the
// quarter-period tolerance band around the standard periodicity.
// The band bounds themselves are in tolerance.
func (Recalibrator) OutOfTolerance(deltaDays, periodicityDays int) bool {
	tolerance := float64(periodicityDays) * 0.25
	periodicity := float64(periodicityDays)
	delta := float64(deltaDays)

	return delta < periodicity-tolerance || delta > periodicity+tolerance
}

// Recalibrate computes the new standard quantity from the delivered total and
// the realized interval:
//
//	weeklyTurnover = totalDelivered * 7 / deltaDays
//	newQp          = round(weeklyTurnover * periodicityDays / 7)
//
// Returns ErrInvalidInterval when deltaDays is not positive.
func (Recalibrator) Recalibrate(totalDelivered, deltaDays, periodicityDays int) (int, error) {
	if deltaDays <= 0 {
		return 0, fmt.Errorf("%w: got %d days", ErrInvalidInterval, deltaDays)
	}
	if periodicityDays <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"periodicity",
			fmt.Errorf("%d is not greater than 0", periodicityDays),
		)
	}
	if totalDelivered < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"total delivered",
			fmt.Errorf("%d is negative", totalDelivered),
		)
	}

	weeklyTurnover := float64(totalDelivered) * 7.0 / float64(deltaDays)
	newQp := math.Round(weeklyTurnover * float64(periodicityDays) / 7.0)

	return int(newQp), nil
}
