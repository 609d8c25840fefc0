// Package fooditems tracks food items, computes their expiration dates
// from shelf-life periods and classifies them as active, warning or
// expired.
package fooditems

import (
	"context"

	"github.com/robinspt/food-inventory-system/pkg/pagination"
)

// System defines food item storage and expiration operations.
type System interface {
	// List returns a page of items matching the filters.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Item], error)

	// Find returns ErrNotFound when the item does not exist.
	Find(ctx context.Context, id int64) (*Item, error)

	// Create validates the command, computes the expiration date and
	// status, and stores the item.
	Create(ctx context.Context, cmd CreateCommand) (*Item, error)

	// Update applies a partial update. Returns ErrNoFieldsToUpdate for an
	// empty command and ErrNotFound for a missing item.
	Update(ctx context.Context, id int64, cmd UpdateCommand) (*Item, error)

	// Delete returns ErrNotFound when the item does not exist.
	Delete(ctx context.Context, id int64) error

	// Notifications returns warning and expired items, soonest expiration
	// first.
	Notifications(ctx context.Context) ([]Item, error)

	// RefreshStatuses recomputes every item's status against today and
	// returns the items whose status changed.
	RefreshStatuses(ctx context.Context, today Date) ([]StatusChange, error)
}
