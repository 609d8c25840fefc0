package fooditems_test

import (
	"errors"
	"testing"

	"github.com/robinspt/food-inventory-system/internal/fooditems"
)

func ptr[T any](v T) *T { return &v }

func TestCreateCommandResolve(t *testing.T) {
	today := mustDate(t, "2024-06-10")

	t.Run("expiration date only", func(t *testing.T) {
		exp := mustDate(t, "2024-06-14")
		item, err := fooditems.CreateCommand{
			Name:           " Milk ",
			Quantity:       ptr(2),
			ExpirationDate: &exp,
		}.Resolve(today, fooditems.DefaultWarningDays)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}

		if item.Name != "Milk" {
			t.Errorf("Name = %q", item.Name)
		}
		if !item.ProductionDate.Equal(exp) || !item.ExpirationDate.Equal(exp) {
			t.Errorf("dates = %s / %s, want both %s", item.ProductionDate, item.ExpirationDate, exp)
		}
		if item.ExpiryPeriodValue != 0 || item.ExpiryPeriodUnit != fooditems.UnitDays {
			t.Errorf("period = %d %s, want 0 days", item.ExpiryPeriodValue, item.ExpiryPeriodUnit)
		}
		if item.Status != fooditems.StatusWarning {
			t.Errorf("Status = %s, want warning", item.Status)
		}
	})

	t.Run("production and period", func(t *testing.T) {
		prod := mustDate(t, "2024-05-31")
		item, err := fooditems.CreateCommand{
			Name:              "Cheese",
			Quantity:          ptr(1),
			StorageLocation:   "Fridge",
			ProductionDate:    &prod,
			ExpiryPeriodValue: ptr(3),
			ExpiryPeriodUnit:  ptr("MONTHS"),
		}.Resolve(today, fooditems.DefaultWarningDays)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}

		if item.ExpirationDate.String() != "2024-08-31" {
			t.Errorf("ExpirationDate = %s", item.ExpirationDate)
		}
		if item.ExpiryPeriodUnit != fooditems.UnitMonths {
			t.Errorf("Unit = %s", item.ExpiryPeriodUnit)
		}
		if item.Status != fooditems.StatusActive {
			t.Errorf("Status = %s", item.Status)
		}
	})

	prod := mustDate(t, "2024-06-01")
	exp := mustDate(t, "2024-07-01")

	errTests := []struct {
		name string
		cmd  fooditems.CreateCommand
		want error
	}{
		{
			name: "no dates checked before fields",
			cmd:  fooditems.CreateCommand{},
			want: fooditems.ErrMissingDates,
		},
		{
			name: "period without unit",
			cmd:  fooditems.CreateCommand{Name: "x", Quantity: ptr(1), ProductionDate: &prod, ExpiryPeriodValue: ptr(3)},
			want: fooditems.ErrMissingDates,
		},
		{
			name: "empty expiration string",
			cmd:  fooditems.CreateCommand{Name: "x", Quantity: ptr(1), ExpirationDate: &fooditems.Date{}},
			want: fooditems.ErrMissingDates,
		},
		{
			name: "bad unit",
			cmd:  fooditems.CreateCommand{Name: "x", Quantity: ptr(1), ProductionDate: &prod, ExpiryPeriodValue: ptr(3), ExpiryPeriodUnit: ptr("weeks")},
			want: fooditems.ErrInvalidPeriod,
		},
		{
			name: "missing name",
			cmd:  fooditems.CreateCommand{Quantity: ptr(1), ExpirationDate: &exp},
			want: fooditems.ErrMissingFields,
		},
		{
			name: "zero quantity",
			cmd:  fooditems.CreateCommand{Name: "x", Quantity: ptr(0), ExpirationDate: &exp},
			want: fooditems.ErrMissingFields,
		},
		{
			name: "missing quantity",
			cmd:  fooditems.CreateCommand{Name: "x", ExpirationDate: &exp},
			want: fooditems.ErrMissingFields,
		},
		{
			name: "negative quantity",
			cmd:  fooditems.CreateCommand{Name: "x", Quantity: ptr(-2), ExpirationDate: &exp},
			want: fooditems.ErrInvalidQuantity,
		},
	}

	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cmd.Resolve(today, fooditems.DefaultWarningDays)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUpdateCommandApply(t *testing.T) {
	today := mustDate(t, "2024-06-10")
	existing := fooditems.Item{
		ID:                7,
		Name:              "Yogurt",
		ProductionDate:    mustDate(t, "2024-06-01"),
		ExpiryPeriodValue: 30,
		ExpiryPeriodUnit:  fooditems.UnitDays,
		Quantity:          4,
		StorageLocation:   "Fridge",
		ExpirationDate:    mustDate(t, "2024-07-01"),
		Status:            fooditems.StatusActive,
	}

	t.Run("empty", func(t *testing.T) {
		_, err := fooditems.UpdateCommand{}.Apply(existing, today, 7)
		if !errors.Is(err, fooditems.ErrNoFieldsToUpdate) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("quantity keeps dates", func(t *testing.T) {
		item, err := fooditems.UpdateCommand{Quantity: ptr(0)}.Apply(existing, today, 7)
		if err != nil {
			t.Fatal(err)
		}
		if item.Quantity != 0 {
			t.Errorf("Quantity = %d", item.Quantity)
		}
		if !item.ExpirationDate.Equal(existing.ExpirationDate) || item.Status != existing.Status {
			t.Errorf("dates changed: %s %s", item.ExpirationDate, item.Status)
		}
	})

	t.Run("unit change recomputes", func(t *testing.T) {
		item, err := fooditems.UpdateCommand{
			ExpiryPeriodValue: ptr(1),
			ExpiryPeriodUnit:  ptr("months"),
		}.Apply(existing, today, 7)
		if err != nil {
			t.Fatal(err)
		}
		if item.ExpirationDate.String() != "2024-07-01" || item.ExpiryPeriodUnit != fooditems.UnitMonths {
			t.Errorf("got %s %s", item.ExpirationDate, item.ExpiryPeriodUnit)
		}
	})

	t.Run("production change moves status", func(t *testing.T) {
		prod := mustDate(t, "2024-05-12")
		item, err := fooditems.UpdateCommand{ProductionDate: &prod}.Apply(existing, today, 7)
		if err != nil {
			t.Fatal(err)
		}
		if item.ExpirationDate.String() != "2024-06-11" {
			t.Errorf("ExpirationDate = %s", item.ExpirationDate)
		}
		if item.Status != fooditems.StatusWarning {
			t.Errorf("Status = %s", item.Status)
		}
	})

	t.Run("explicit status wins", func(t *testing.T) {
		prod := mustDate(t, "2024-01-01")
		item, err := fooditems.UpdateCommand{
			ProductionDate: &prod,
			Status:         ptr("active"),
		}.Apply(existing, today, 7)
		if err != nil {
			t.Fatal(err)
		}
		if item.Status != fooditems.StatusActive {
			t.Errorf("Status = %s", item.Status)
		}
	})

	errTests := []struct {
		name string
		cmd  fooditems.UpdateCommand
		want error
	}{
		{"blank name", fooditems.UpdateCommand{Name: ptr("  ")}, fooditems.ErrMissingFields},
		{"negative quantity", fooditems.UpdateCommand{Quantity: ptr(-1)}, fooditems.ErrInvalidQuantity},
		{"bad status", fooditems.UpdateCommand{Status: ptr("stale")}, fooditems.ErrInvalidStatus},
		{"bad unit", fooditems.UpdateCommand{ExpiryPeriodUnit: ptr("years")}, fooditems.ErrInvalidPeriod},
		{"cleared production", fooditems.UpdateCommand{ProductionDate: &fooditems.Date{}}, fooditems.ErrMissingDates},
	}

	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cmd.Apply(existing, today, 7)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
