package fooditems

import (
	"net/url"

	"github.com/robinspt/food-inventory-system/pkg/query"
	"github.com/robinspt/food-inventory-system/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "food_items", "f").
	Project("id", "id").
	Project("name", "name").
	Project("production_date", "production_date").
	Project("expiry_period_value", "expiry_period_value").
	Project("expiry_period_unit", "expiry_period_unit").
	Project("quantity", "quantity").
	Project("storage_location", "storage_location").
	Project("expiration_date", "expiration_date").
	Project("status", "status").
	Project("created_at", "created_at").
	Project("updated_at", "updated_at")

var defaultSort = []query.SortField{
	{Field: "expiration_date"},
	{Field: "id"},
}

const returning = `
	RETURNING id, name, production_date, expiry_period_value, expiry_period_unit,
		quantity, storage_location, expiration_date, status, created_at, updated_at`

func scanItem(s repository.Scanner) (Item, error) {
	var i Item
	err := s.Scan(
		&i.ID, &i.Name, &i.ProductionDate, &i.ExpiryPeriodValue, &i.ExpiryPeriodUnit,
		&i.Quantity, &i.StorageLocation, &i.ExpirationDate, &i.Status, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

func scanChange(s repository.Scanner) (StatusChange, error) {
	var c StatusChange
	err := s.Scan(&c.ID, &c.Name, &c.From, &c.To)
	return c, err
}

// Filters contains optional filtering criteria for item queries.
type Filters struct {
	Status          *Status
	StorageLocation *string
	Name            *string
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) (Filters, error) {
	var f Filters

	if s := values.Get("status"); s != "" {
		st, err := ParseStatus(s)
		if err != nil {
			return Filters{}, err
		}
		f.Status = &st
	}
	if l := values.Get("storage_location"); l != "" {
		f.StorageLocation = &l
	}
	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	return f, nil
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Status != nil {
		b.WhereEquals("status", string(*f.Status))
	}
	return b.
		WhereEquals("storage_location", f.StorageLocation).
		WhereContains("name", f.Name)
}
