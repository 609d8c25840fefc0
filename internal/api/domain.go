package api

import (
	"github.com/robinspt/food-inventory-system/internal/fooditems"
	"github.com/robinspt/food-inventory-system/internal/users"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Users     users.System
	FoodItems fooditems.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Users: users.New(
			runtime.Database.Connection(),
			runtime.Logger,
		),
		FoodItems: fooditems.New(
			runtime.Database.Connection(),
			runtime.Logger,
			runtime.Pagination,
			runtime.WarningDays,
		),
	}
}
