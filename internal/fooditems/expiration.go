package fooditems

import "fmt"

// DefaultWarningDays is the window before expiration in which an item is
// reported as a warning.
const DefaultWarningDays = 7

// CalculateExpiration adds a shelf-life period to the production date.
func CalculateExpiration(production Date, value int, unit string) (Date, error) {
	if production.IsZero() {
		return Date{}, fmt.Errorf("%w: production_date required", ErrMissingDates)
	}
	if value < 0 {
		return Date{}, fmt.Errorf("%w: expiry_period_value must not be negative", ErrInvalidPeriod)
	}

	u, err := ParseUnit(unit)
	if err != nil {
		return Date{}, err
	}

	switch u {
	case UnitMonths:
		return production.AddMonths(value), nil
	default:
		return production.AddDays(value), nil
	}
}

// Thresholds holds the last expiration dates classified as expired and as
// warning on a given day. RefreshStatuses binds the same two dates into its
// SQL.
type Thresholds struct {
	ExpiredBy Date
	WarningBy Date
}

// ThresholdsFor returns the classification boundaries for today.
func ThresholdsFor(today Date, warningDays int) Thresholds {
	return Thresholds{
		ExpiredBy: today,
		WarningBy: today.AddDays(warningDays),
	}
}

// Status classifies an expiration date against the thresholds.
func (t Thresholds) Status(expiration Date) Status {
	switch {
	case !expiration.After(t.ExpiredBy):
		return StatusExpired
	case !expiration.After(t.WarningBy):
		return StatusWarning
	default:
		return StatusActive
	}
}

// StatusFor classifies an expiration date: expired on or before today,
// warning within warningDays of today, otherwise active.
func StatusFor(expiration, today Date, warningDays int) Status {
	return ThresholdsFor(today, warningDays).Status(expiration)
}
