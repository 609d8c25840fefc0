package fooditems

import (
	"fmt"
	"strings"
)

// CreateCommand is the request body for creating an item. Dates come
// either as an explicit expiration_date or as production_date plus a
// shelf-life period.
type CreateCommand struct {
	Name              string  `json:"name"`
	Quantity          *int    `json:"quantity"`
	StorageLocation   string  `json:"storage_location"`
	ProductionDate    *Date   `json:"production_date"`
	ExpiryPeriodValue *int    `json:"expiry_period_value"`
	ExpiryPeriodUnit  *string `json:"expiry_period_unit"`
	ExpirationDate    *Date   `json:"expiration_date"`
}

// Resolve validates the command and returns the item to insert, with its
// expiration date and status computed against today.
func (c CreateCommand) Resolve(today Date, warningDays int) (Item, error) {
	item := Item{
		Name:            strings.TrimSpace(c.Name),
		StorageLocation: strings.TrimSpace(c.StorageLocation),
	}

	switch {
	case isSet(c.ExpirationDate):
		item.ExpirationDate = *c.ExpirationDate
		item.ProductionDate = *c.ExpirationDate
		if isSet(c.ProductionDate) {
			item.ProductionDate = *c.ProductionDate
		}
		item.ExpiryPeriodUnit = UnitDays
		if c.ExpiryPeriodValue != nil {
			if *c.ExpiryPeriodValue < 0 {
				return Item{}, fmt.Errorf("%w: expiry_period_value must not be negative", ErrInvalidPeriod)
			}
			item.ExpiryPeriodValue = *c.ExpiryPeriodValue
		}
		if c.ExpiryPeriodUnit != nil && *c.ExpiryPeriodUnit != "" {
			u, err := ParseUnit(*c.ExpiryPeriodUnit)
			if err != nil {
				return Item{}, err
			}
			item.ExpiryPeriodUnit = u
		}

	case isSet(c.ProductionDate) && c.ExpiryPeriodValue != nil && c.ExpiryPeriodUnit != nil && *c.ExpiryPeriodUnit != "":
		exp, err := CalculateExpiration(*c.ProductionDate, *c.ExpiryPeriodValue, *c.ExpiryPeriodUnit)
		if err != nil {
			return Item{}, err
		}
		item.ProductionDate = *c.ProductionDate
		item.ExpiryPeriodValue = *c.ExpiryPeriodValue
		item.ExpiryPeriodUnit, _ = ParseUnit(*c.ExpiryPeriodUnit)
		item.ExpirationDate = exp

	default:
		return Item{}, ErrMissingDates
	}

	if item.Name == "" || c.Quantity == nil || *c.Quantity == 0 {
		return Item{}, ErrMissingFields
	}
	if *c.Quantity < 0 {
		return Item{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidQuantity)
	}
	item.Quantity = *c.Quantity

	item.Status = StatusFor(item.ExpirationDate, today, warningDays)
	return item, nil
}

// UpdateCommand is a partial update. Nil fields are left unchanged.
type UpdateCommand struct {
	Name              *string `json:"name"`
	ProductionDate    *Date   `json:"production_date"`
	ExpiryPeriodValue *int    `json:"expiry_period_value"`
	ExpiryPeriodUnit  *string `json:"expiry_period_unit"`
	Quantity          *int    `json:"quantity"`
	StorageLocation   *string `json:"storage_location"`
	Status            *string `json:"status"`
}

// Empty reports whether the command changes nothing.
func (c UpdateCommand) Empty() bool {
	return c.Name == nil &&
		c.ProductionDate == nil &&
		c.ExpiryPeriodValue == nil &&
		c.ExpiryPeriodUnit == nil &&
		c.Quantity == nil &&
		c.StorageLocation == nil &&
		c.Status == nil
}

// Apply merges the command into existing. Changing any date input
// recomputes the expiration date from the merged values. An explicit
// status wins; otherwise status follows a recomputed expiration.
func (c UpdateCommand) Apply(existing Item, today Date, warningDays int) (Item, error) {
	if c.Empty() {
		return Item{}, ErrNoFieldsToUpdate
	}

	item := existing

	if c.Name != nil {
		name := strings.TrimSpace(*c.Name)
		if name == "" {
			return Item{}, ErrMissingFields
		}
		item.Name = name
	}
	if c.Quantity != nil {
		if *c.Quantity < 0 {
			return Item{}, fmt.Errorf("%w: quantity must not be negative", ErrInvalidQuantity)
		}
		item.Quantity = *c.Quantity
	}
	if c.StorageLocation != nil {
		item.StorageLocation = strings.TrimSpace(*c.StorageLocation)
	}

	if c.ProductionDate != nil || c.ExpiryPeriodValue != nil || c.ExpiryPeriodUnit != nil {
		if c.ProductionDate != nil {
			if !isSet(c.ProductionDate) {
				return Item{}, fmt.Errorf("%w: production_date must not be empty", ErrMissingDates)
			}
			item.ProductionDate = *c.ProductionDate
		}
		if c.ExpiryPeriodValue != nil {
			item.ExpiryPeriodValue = *c.ExpiryPeriodValue
		}
		unit := string(item.ExpiryPeriodUnit)
		if c.ExpiryPeriodUnit != nil {
			unit = *c.ExpiryPeriodUnit
		}

		exp, err := CalculateExpiration(item.ProductionDate, item.ExpiryPeriodValue, unit)
		if err != nil {
			return Item{}, err
		}
		item.ExpiryPeriodUnit, _ = ParseUnit(unit)
		item.ExpirationDate = exp
		item.Status = StatusFor(exp, today, warningDays)
	}

	if c.Status != nil {
		st, err := ParseStatus(*c.Status)
		if err != nil {
			return Item{}, err
		}
		item.Status = st
	}

	return item, nil
}

func isSet(d *Date) bool {
	return d != nil && !d.IsZero()
}
