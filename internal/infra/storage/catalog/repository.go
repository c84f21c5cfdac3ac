package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/arnakr/AeroPark-Service/internal/domain"
	"github.com/arnakr/AeroPark-Service/pkg/dbtx"
	"github.com/arnakr/AeroPark-Service/pkg/psqlbuilder"
)

// Repository persistence for the add-on service catalog
type Repository struct {
	db dbtx.DBExecutor
}

// NewRepository creates a catalog repository
func NewRepository(db dbtx.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCategories lists service categories in display order
func (r *Repository) GetCategories(ctx context.Context) ([]*domain.ServiceCategory, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"icon",
		"sort_order",
		"created_at",
		"updated_at",
	).
		From("service_categories").
		OrderBy("sort_order ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.ServiceCategory, 0)
	for rows.Next() {
		var c domain.ServiceCategory
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.SortOrder, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetCategories - scan row: %v", ErrScanRow, err)
		}

		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// GetServices lists services with their per-size price lists.
// With activeOnly set, disabled services are filtered out.
func (r *Repository) GetServices(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"category_id",
		"name",
		"icon",
		"active",
		"created_at",
		"updated_at",
	).
		From("services").
		OrderBy("category_id ASC, id ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	byID := make(map[int64]*domain.Service)

	for rows.Next() {
		var s domain.Service
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Icon, &s.Active, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetServices - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		s.Prices = make(map[domain.SizeClass]int64)

		services = append(services, &s)
		byID[s.ID] = &s
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServices - rows error: %v", ErrScanRow, err)
	}

	if len(services) == 0 {
		return services, nil
	}

	if err := r.attachPrices(ctx, byID); err != nil {
		return nil, err
	}

	return services, nil
}

// GetServiceByID fetches one service with its price list
func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"category_id",
		"name",
		"icon",
		"active",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.CategoryID,
		&s.Name,
		&s.Icon,
		&s.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	s.Prices = make(map[domain.SizeClass]int64)

	if err := r.attachPrices(ctx, map[int64]*domain.Service{s.ID: &s}); err != nil {
		return nil, err
	}

	return &s, nil
}

// ReplacePrices replaces the per-size price list of a service.
// Meant to run inside a transaction so readers never see a partial list.
func (r *Repository) ReplacePrices(ctx context.Context, serviceID int64, prices map[domain.SizeClass]int64) error {
	executor := dbtx.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("service_prices").
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplacePrices - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplacePrices - execute delete: %v", ErrExecQuery, err)
	}

	if len(prices) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("service_prices").
		Columns("service_id", "size_class", "price")

	// Deterministic insert order
	for _, size := range domain.SizeClasses {
		if price, ok := prices[size]; ok {
			insertBuilder = insertBuilder.Values(serviceID, size, price)
		}
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplacePrices - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplacePrices - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// attachPrices loads service_prices rows for the given services
func (r *Repository) attachPrices(ctx context.Context, byID map[int64]*domain.Service) error {
	executor := dbtx.GetExecutor(ctx, r.db)

	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	query, args, err := psqlbuilder.Select("service_id", "size_class", "price").
		From("service_prices").
		Where(squirrel.Eq{"service_id": ids}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachPrices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachPrices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var serviceID int64
		var size domain.SizeClass
		var price int64

		if err := rows.Scan(&serviceID, &size, &price); err != nil {
			return fmt.Errorf("%w: attachPrices - scan row: %v", ErrScanRow, err)
		}

		if s, ok := byID[serviceID]; ok {
			s.Prices[size] = price
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachPrices - rows error: %v", ErrScanRow, err)
	}

	return nil
}
