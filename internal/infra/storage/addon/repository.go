package addon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/arnakr/AeroPark-Service/internal/domain"
	"github.com/arnakr/AeroPark-Service/pkg/dbtx"
	"github.com/arnakr/AeroPark-Service/pkg/psqlbuilder"
)

// Repository persistence for booking add-ons
type Repository struct {
	db dbtx.DBExecutor
}

// NewRepository creates an addon repository
func NewRepository(db dbtx.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateForBooking inserts the addon rows for a booking. Called inside the
// create-booking transaction together with the booking insert.
func (r *Repository) CreateForBooking(ctx context.Context, bookingID int64, addons []*domain.BookingAddon) error {
	if len(addons) == 0 {
		return nil
	}

	executor := dbtx.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("booking_addons").
		Columns("booking_id", "service_id", "service_name", "price", "status")

	for _, a := range addons {
		insertBuilder = insertBuilder.Values(bookingID, a.ServiceID, a.ServiceName, a.Price, domain.AddonPending)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateForBooking - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateForBooking - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByBookingID lists the addons of a booking, oldest first
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.BookingAddon, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"service_id",
		"service_name",
		"price",
		"status",
		"created_at",
		"updated_at",
	).
		From("booking_addons").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	addons := make([]*domain.BookingAddon, 0)
	for rows.Next() {
		var a domain.BookingAddon
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&a.ID,
			&a.BookingID,
			&a.ServiceID,
			&a.ServiceName,
			&a.Price,
			&a.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBookingID - scan row: %v", ErrScanRow, err)
		}

		a.CreatedAt = createdAt.Time
		a.UpdatedAt = updatedAt.Time
		addons = append(addons, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - rows error: %v", ErrScanRow, err)
	}

	return addons, nil
}

// UpdateStatus sets the status of one addon of the given booking.
// The booking id is part of the predicate so an addon id from another
// booking cannot be mutated through a mismatched URL.
func (r *Repository) UpdateStatus(ctx context.Context, bookingID, addonID int64, status domain.AddonStatus) error {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_addons").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": addonID, "booking_id": bookingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAddonNotFound
	}

	return nil
}
