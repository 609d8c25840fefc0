package fooditems

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/robinspt/food-inventory-system/pkg/repository"
)

func TestMapError(t *testing.T) {
	r := &repo{}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"domain error passes through", fmt.Errorf("apply: %w", ErrInvalidDate), ErrInvalidDate},
		{"no rows", sql.ErrNoRows, ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: repository.CodeUniqueViolation}, ErrDuplicate},
		{"check violation", &pgconn.PgError{Code: repository.CodeCheckViolation}, ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.mapError(tt.err); !errors.Is(got, tt.want) {
				t.Errorf("mapError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}

	other := errors.New("connection reset")
	if got := r.mapError(other); got != other {
		t.Errorf("mapError(%v) = %v, want unchanged", other, got)
	}
}
