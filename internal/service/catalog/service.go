package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/arnakr/AeroPark-Service/internal/domain"
	catalogRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/catalog"
	"github.com/arnakr/AeroPark-Service/internal/service/catalog/models"
)

// Service admin-facing catalog management and the public catalog view
type Service struct {
	repo      CatalogRepository
	txManager TransactionManager
	logger    Logger
}

// NewService creates the catalog service
func NewService(repo CatalogRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetCatalog returns the public service catalog grouped by category.
// Only active services are listed.
func (s *Service) GetCatalog(ctx context.Context) (*models.CatalogResponse, error) {
	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		s.logger.Error("GetCatalog: failed to load categories: %v", err)
		return nil, fmt.Errorf("%w: GetCatalog - load categories: %v", ErrInternal, err)
	}

	services, err := s.repo.GetServices(ctx, true)
	if err != nil {
		s.logger.Error("GetCatalog: failed to load services: %v", err)
		return nil, fmt.Errorf("%w: GetCatalog - load services: %v", ErrInternal, err)
	}

	return models.FromDomainCatalog(categories, services), nil
}

// UpdatePrices replaces the per-size price list of a service (admin action)
func (s *Service) UpdatePrices(ctx context.Context, serviceID int64, req *models.UpdatePricesRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdatePrices: service=%d classes=%d", serviceID, len(req.Prices))

	prices := make(map[domain.SizeClass]int64, len(req.Prices))
	for sizeStr, price := range req.Prices {
		size := domain.SizeClass(sizeStr)
		if !domain.ValidSizeClass(size) {
			s.logger.Warn("UpdatePrices: unknown size class %q for service=%d", sizeStr, serviceID)
			return nil, fmt.Errorf("%w: unknown size class %q", ErrInvalidInput, sizeStr)
		}
		if price < 0 {
			return nil, fmt.Errorf("%w: negative price for size class %q", ErrInvalidInput, sizeStr)
		}
		prices[size] = price
	}

	// Replace inside a transaction so the catalog never shows a half list
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetServiceByID(txCtx, serviceID); err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			return fmt.Errorf("%w: UpdatePrices - load service: %v", ErrInternal, err)
		}
		return s.repo.ReplacePrices(txCtx, serviceID, prices)
	})
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			s.logger.Warn("UpdatePrices: service=%d not found", serviceID)
			return nil, err
		}
		s.logger.Error("UpdatePrices: failed for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: UpdatePrices - repository error: %v", ErrInternal, err)
	}

	updated, err := s.repo.GetServiceByID(ctx, serviceID)
	if err != nil {
		s.logger.Error("UpdatePrices: failed to re-read service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: UpdatePrices - re-read service: %v", ErrInternal, err)
	}

	resp := models.FromDomainService(updated)
	return &resp, nil
}
