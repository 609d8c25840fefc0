package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/robinspt/food-inventory-system/internal/fooditems"
)

func init() {
	registerSeeder(&FoodItemSeeder{now: time.Now})
}

// FoodItemSeed is a create request plus an optional expiration relative
// to the day the seeder runs, so demo data always spans every status.
type FoodItemSeed struct {
	fooditems.CreateCommand
	ExpiresInDays *int `json:"expires_in_days"`
}

// FoodItemSeedData represents the JSON structure for food item seed files.
type FoodItemSeedData struct {
	FoodItems []FoodItemSeed `json:"food_items"`
}

// FoodItemSeeder inserts demo food items. An item whose name and storage
// location already exist is skipped.
type FoodItemSeeder struct {
	file string
	now  func() time.Time
}

func (s *FoodItemSeeder) Name() string {
	return "food_items"
}

func (s *FoodItemSeeder) Description() string {
	return "Seeds demo food items across active, warning and expired states"
}

func (s *FoodItemSeeder) SetFile(path string) {
	s.file = path
}

func (s *FoodItemSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	content, err := readSeedFile(s.file, "food_items.json")
	if err != nil {
		return err
	}

	var data FoodItemSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("parse seed data: %w", err)
	}

	today := fooditems.DateOf(s.now())

	const query = `
		INSERT INTO food_items (
			name, production_date, expiry_period_value, expiry_period_unit,
			quantity, storage_location, expiration_date, status
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8
		WHERE NOT EXISTS (
			SELECT 1 FROM food_items WHERE name = $1 AND storage_location = $6
		)`

	for _, seed := range data.FoodItems {
		item, err := seed.resolve(today)
		if err != nil {
			return fmt.Errorf("food item %q: %w", seed.Name, err)
		}

		_, err = tx.ExecContext(ctx, query,
			item.Name, item.ProductionDate, item.ExpiryPeriodValue, string(item.ExpiryPeriodUnit),
			item.Quantity, item.StorageLocation, item.ExpirationDate, string(item.Status),
		)
		if err != nil {
			return fmt.Errorf("save food item %s: %w", item.Name, err)
		}
	}

	return nil
}

func (s FoodItemSeed) resolve(today fooditems.Date) (fooditems.Item, error) {
	cmd := s.CreateCommand
	if s.ExpiresInDays != nil {
		exp := today.AddDays(*s.ExpiresInDays)
		cmd.ExpirationDate = &exp
	}
	return cmd.Resolve(today, fooditems.DefaultWarningDays)
}
