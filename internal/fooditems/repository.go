package fooditems

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/robinspt/food-inventory-system/pkg/pagination"
	"github.com/robinspt/food-inventory-system/pkg/query"
	"github.com/robinspt/food-inventory-system/pkg/repository"
)

type repo struct {
	db          *sql.DB
	logger      *slog.Logger
	pagination  pagination.Config
	warningDays int
	now         func() time.Time
}

// New creates a food items repository implementing the System interface.
// warningDays below zero falls back to DefaultWarningDays.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config, warningDays int) System {
	if warningDays < 0 {
		warningDays = DefaultWarningDays
	}
	return &repo{
		db:          db,
		logger:      logger.With("system", "food_item"),
		pagination:  pagination,
		warningDays: warningDays,
		now:         time.Now,
	}
}

func (r *repo) today() Date {
	return DateOf(r.now())
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Item], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort...).
		WhereSearch(page.Search, "name", "storage_location")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count food items: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanItem)
	if err != nil {
		return nil, fmt.Errorf("query food items: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Item, error) {
	q, args := query.NewBuilder(projection).BuildSingle("id", id)

	item, err := repository.QueryOne(ctx, r.db, q, args, scanItem)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &item, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Item, error) {
	item, err := cmd.Resolve(r.today(), r.warningDays)
	if err != nil {
		return nil, err
	}

	q := `
		INSERT INTO food_items (
			name, production_date, expiry_period_value, expiry_period_unit,
			quantity, storage_location, expiration_date, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)` + returning

	args := []any{
		item.Name, item.ProductionDate, item.ExpiryPeriodValue, string(item.ExpiryPeriodUnit),
		item.Quantity, item.StorageLocation, item.ExpirationDate, string(item.Status),
	}

	created, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Item, error) {
		return repository.QueryOne(ctx, tx, q, args, scanItem)
	})
	if err != nil {
		return nil, r.mapError(err)
	}

	r.logger.Info(
		"food item created",
		"id", created.ID,
		"name", created.Name,
		"expiration_date", created.ExpirationDate.String(),
		"status", created.Status,
	)
	return &created, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd UpdateCommand) (*Item, error) {
	if cmd.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	selectQ, selectArgs := query.NewBuilder(projection).BuildSingle("id", id)
	selectQ += " FOR UPDATE"

	updateQ := `
		UPDATE food_items
		SET name = $1, production_date = $2, expiry_period_value = $3,
			expiry_period_unit = $4, quantity = $5, storage_location = $6,
			expiration_date = $7, status = $8, updated_at = NOW()
		WHERE id = $9` + returning

	updated, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Item, error) {
		existing, err := repository.QueryOne(ctx, tx, selectQ, selectArgs, scanItem)
		if err != nil {
			return Item{}, err
		}

		item, err := cmd.Apply(existing, r.today(), r.warningDays)
		if err != nil {
			return Item{}, err
		}

		return repository.QueryOne(ctx, tx, updateQ, []any{
			item.Name, item.ProductionDate, item.ExpiryPeriodValue, string(item.ExpiryPeriodUnit),
			item.Quantity, item.StorageLocation, item.ExpirationDate, string(item.Status), id,
		}, scanItem)
	})
	if err != nil {
		return nil, r.mapError(err)
	}

	r.logger.Info("food item updated", "id", updated.ID, "status", updated.Status)
	return &updated, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		err := repository.ExecExpectOne(ctx, tx, "DELETE FROM food_items WHERE id = $1", id)
		return struct{}{}, err
	})
	if err != nil {
		return r.mapError(err)
	}

	r.logger.Info("food item deleted", "id", id)
	return nil
}

func (r *repo) Notifications(ctx context.Context) ([]Item, error) {
	q, args := query.
		NewBuilder(projection, defaultSort...).
		WhereIn("status", string(StatusWarning), string(StatusExpired)).
		BuildSelect()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanItem)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	return items, nil
}

func (r *repo) RefreshStatuses(ctx context.Context, today Date) ([]StatusChange, error) {
	// $1 and $2 are Thresholds.ExpiredBy and WarningBy; the CASE mirrors
	// Thresholds.Status.
	q := `
		WITH computed AS (
			SELECT id,
				status AS previous,
				CASE
					WHEN expiration_date <= $1 THEN 'expired'
					WHEN expiration_date <= $2 THEN 'warning'
					ELSE 'active'
				END AS next
			FROM food_items
		)
		UPDATE food_items f
		SET status = c.next, updated_at = NOW()
		FROM computed c
		WHERE f.id = c.id AND c.previous <> c.next
		RETURNING f.id, f.name, c.previous, c.next`

	th := ThresholdsFor(today, r.warningDays)
	args := []any{th.ExpiredBy, th.WarningBy}

	changes, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) ([]StatusChange, error) {
		return repository.QueryMany(ctx, tx, q, args, scanChange)
	})
	if err != nil {
		return nil, fmt.Errorf("refresh statuses: %w", err)
	}
	return changes, nil
}

// mapError passes domain errors through and translates database errors.
func (r *repo) mapError(err error) error {
	if IsDomainError(err) {
		return err
	}
	if repository.IsCode(err, repository.CodeCheckViolation) {
		return fmt.Errorf("%w: %v", ErrInvalidQuantity, err)
	}
	return repository.MapError(err, ErrNotFound, ErrDuplicate)
}
