package fooditems

import (
	"fmt"
	"strings"
	"time"
)

// Status is the expiration state of an item relative to today.
type Status string

const (
	StatusActive  Status = "active"
	StatusWarning Status = "warning"
	StatusExpired Status = "expired"
)

// ParseStatus accepts the status names case-insensitively.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusWarning, StatusExpired:
		return true
	}
	return false
}

// Unit is the unit of a shelf-life period.
type Unit string

const (
	UnitDays   Unit = "days"
	UnitMonths Unit = "months"
)

// ParseUnit accepts the unit names case-insensitively.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	switch u {
	case UnitDays, UnitMonths:
		return u, nil
	}
	return "", fmt.Errorf("%w: unit must be 'days' or 'months', got %q", ErrInvalidPeriod, s)
}

// Item is a tracked food item.
type Item struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	ProductionDate    Date      `json:"production_date"`
	ExpiryPeriodValue int       `json:"expiry_period_value"`
	ExpiryPeriodUnit  Unit      `json:"expiry_period_unit"`
	Quantity          int       `json:"quantity"`
	StorageLocation   string    `json:"storage_location"`
	ExpirationDate    Date      `json:"expiration_date"`
	Status            Status    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// StatusChange records a status transition made by RefreshStatuses.
type StatusChange struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	From Status `json:"from"`
	To   Status `json:"to"`
}
