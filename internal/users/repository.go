package users

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/robinspt/food-inventory-system/pkg/query"
	"github.com/robinspt/food-inventory-system/pkg/repository"
)

type repo struct {
	db        *sql.DB
	logger    *slog.Logger
	cost      int
	dummyHash string
}

// New creates a users repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	dummy, _ := bcrypt.GenerateFromPassword([]byte("food-inventory"), bcrypt.DefaultCost)
	return &repo{
		db:        db,
		logger:    logger.With("system", "user"),
		cost:      bcrypt.DefaultCost,
		dummyHash: string(dummy),
	}
}

func (r *repo) Register(ctx context.Context, creds Credentials) (*User, error) {
	creds.Normalize()
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	hash, err := HashPassword(creds.Password, r.cost)
	if err != nil {
		return nil, err
	}

	q := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at, updated_at`

	u, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (User, error) {
		return repository.QueryOne(ctx, tx, q, []any{creds.Username, hash}, scanUser)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user registered", "id", u.ID, "username", u.Username)
	return &u, nil
}

func (r *repo) Authenticate(ctx context.Context, creds Credentials) (*User, error) {
	creds.Normalize()
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	u, err := r.FindByUsername(ctx, creds.Username)
	if errors.Is(err, ErrNotFound) {
		// keep timing close to the found-user path
		_ = CheckPassword(r.dummyHash, creds.Password)
		r.logger.Warn("login failed", "username", creds.Username, "reason", "unknown user")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := CheckPassword(u.PasswordHash, creds.Password); err != nil {
		r.logger.Warn("login failed", "username", creds.Username, "reason", "password mismatch")
		return nil, err
	}

	r.logger.Info("user logged in", "id", u.ID, "username", u.Username)
	return u, nil
}

func (r *repo) FindByUsername(ctx context.Context, username string) (*User, error) {
	q, args := query.NewBuilder(projection).BuildSingle("username", username)

	u, err := repository.QueryOne(ctx, r.db, q, args, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &u, nil
}
