package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/robinspt/food-inventory-system/internal/users"
)

func init() {
	registerSeeder(&UserSeeder{})
}

// UserSeedData represents the JSON structure for user seed files.
type UserSeedData struct {
	Users []users.Credentials `json:"users"`
}

// UserSeeder creates demo accounts. Existing usernames get their password reset.
type UserSeeder struct {
	file string
}

func (s *UserSeeder) Name() string {
	return "users"
}

func (s *UserSeeder) Description() string {
	return "Seeds demo user accounts"
}

func (s *UserSeeder) SetFile(path string) {
	s.file = path
}

func (s *UserSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	content, err := readSeedFile(s.file, "users.json")
	if err != nil {
		return err
	}

	var data UserSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("parse seed data: %w", err)
	}

	const query = `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			updated_at = NOW()`

	for _, creds := range data.Users {
		creds.Normalize()
		if err := creds.Validate(); err != nil {
			return fmt.Errorf("user %q: %w", creds.Username, err)
		}

		hash, err := users.HashPassword(creds.Password, bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("user %s: %w", creds.Username, err)
		}

		if _, err := tx.ExecContext(ctx, query, creds.Username, hash); err != nil {
			return fmt.Errorf("save user %s: %w", creds.Username, err)
		}
	}

	return nil
}
