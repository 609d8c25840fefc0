// Package users implements account registration and password login.
package users

import "context"

// System defines the account operations behind the register and login
// endpoints.
type System interface {
	// Register stores a new user with a bcrypt password hash.
	// Returns ErrMissingFields or ErrDuplicate.
	Register(ctx context.Context, creds Credentials) (*User, error)

	// Authenticate verifies credentials. Unknown usernames and wrong
	// passwords both return ErrInvalidCredentials.
	Authenticate(ctx context.Context, creds Credentials) (*User, error)

	// FindByUsername returns ErrNotFound when no user has the name.
	FindByUsername(ctx context.Context, username string) (*User, error)
}
