package users

import (
	"github.com/robinspt/food-inventory-system/pkg/query"
	"github.com/robinspt/food-inventory-system/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "users", "u").
	Project("id", "id").
	Project("username", "username").
	Project("password_hash", "password_hash").
	Project("created_at", "created_at").
	Project("updated_at", "updated_at")

func scanUser(s repository.Scanner) (User, error) {
	var u User
	err := s.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
