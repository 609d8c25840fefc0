package users

import (
	"strings"
	"time"
)

// User is a registered account. The password hash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Credentials is the request body for registration and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Normalize trims surrounding whitespace from the username.
func (c *Credentials) Normalize() {
	c.Username = strings.TrimSpace(c.Username)
}

// Validate reports ErrMissingFields when either field is empty.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return ErrMissingFields
	}
	return nil
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}
