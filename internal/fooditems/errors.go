package fooditems

import (
	"errors"
	"net/http"
)

// Domain errors for food item operations.
var (
	ErrNotFound         = errors.New("food item not found")
	ErrDuplicate        = errors.New("food item already exists")
	ErrMissingDates     = errors.New("missing required date fields (either production_date/expiry_period or expiration_date)")
	ErrMissingFields    = errors.New("missing required field: name or quantity")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrInvalidPeriod    = errors.New("invalid expiry period")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidStatus    = errors.New("invalid status, expected active, warning or expired")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrMissingDates),
		errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrInvalidPeriod),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrNoFieldsToUpdate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsDomainError reports whether err wraps one of the food item sentinel
// errors.
func IsDomainError(err error) bool {
	for _, target := range []error{
		ErrNotFound,
		ErrDuplicate,
		ErrMissingDates,
		ErrMissingFields,
		ErrInvalidQuantity,
		ErrInvalidPeriod,
		ErrInvalidDate,
		ErrInvalidStatus,
		ErrNoFieldsToUpdate,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
