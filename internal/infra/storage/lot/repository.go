package lot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/arnakr/AeroPark-Service/internal/domain"
	"github.com/arnakr/AeroPark-Service/pkg/dbtx"
	"github.com/arnakr/AeroPark-Service/pkg/psqlbuilder"
)

// Repository persistence for parking lots
type Repository struct {
	db dbtx.DBExecutor
}

// NewRepository creates a lot repository
func NewRepository(db dbtx.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches a lot with its per-size daily rates
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Lot, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"capacity",
		"base_fee",
		"created_at",
		"updated_at",
	).
		From("lots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var l domain.Lot
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&l.ID,
		&l.Name,
		&l.Capacity,
		&l.BaseFee,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrLotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan lot: %v", ErrScanRow, err)
	}

	l.CreatedAt = createdAt.Time
	l.UpdatedAt = updatedAt.Time

	if l.DailyRates, err = r.getRates(ctx, l.ID); err != nil {
		return nil, err
	}

	return &l, nil
}

// GetAll lists every lot with its rates
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Lot, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"capacity",
		"base_fee",
		"created_at",
		"updated_at",
	).
		From("lots").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	lots := make([]*domain.Lot, 0)
	for rows.Next() {
		var l domain.Lot
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&l.ID, &l.Name, &l.Capacity, &l.BaseFee, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}

		l.CreatedAt = createdAt.Time
		l.UpdatedAt = updatedAt.Time
		lots = append(lots, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	for _, l := range lots {
		if l.DailyRates, err = r.getRates(ctx, l.ID); err != nil {
			return nil, err
		}
	}

	return lots, nil
}

func (r *Repository) getRates(ctx context.Context, lotID int64) (map[domain.SizeClass]int64, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("size_class", "daily_rate").
		From("lot_rates").
		Where(squirrel.Eq{"lot_id": lotID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getRates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getRates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rates := make(map[domain.SizeClass]int64)
	for rows.Next() {
		var size domain.SizeClass
		var rate int64

		if err := rows.Scan(&size, &rate); err != nil {
			return nil, fmt.Errorf("%w: getRates - scan row: %v", ErrScanRow, err)
		}
		rates[size] = rate
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getRates - rows error: %v", ErrScanRow, err)
	}

	return rates, nil
}
