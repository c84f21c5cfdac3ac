package models

import (
	"github.com/arnakr/AeroPark-Service/internal/domain"
)

// UpdatePricesRequest replaces a service's per-size price list
type UpdatePricesRequest struct {
	Prices map[string]int64 `json:"prices"` // size class -> price in ISK
}

// ServiceResponse one catalog service with its price list
type ServiceResponse struct {
	ID     int64            `json:"id"`
	Name   string           `json:"name"`
	Icon   string           `json:"icon"`
	Active bool             `json:"active"`
	Prices map[string]int64 `json:"prices"`
}

// CategoryResponse a category with its services
type CategoryResponse struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Icon     string            `json:"icon"`
	Services []ServiceResponse `json:"services"`
}

// CatalogResponse the full service catalog
type CatalogResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// FromDomainCatalog groups services under their categories for display
func FromDomainCatalog(categories []*domain.ServiceCategory, services []*domain.Service) *CatalogResponse {
	resp := &CatalogResponse{
		Categories: make([]CategoryResponse, 0, len(categories)),
	}

	byCategory := make(map[int64][]ServiceResponse)
	for _, s := range services {
		byCategory[s.CategoryID] = append(byCategory[s.CategoryID], FromDomainService(s))
	}

	for _, c := range categories {
		svcs := byCategory[c.ID]
		if svcs == nil {
			svcs = []ServiceResponse{}
		}
		resp.Categories = append(resp.Categories, CategoryResponse{
			ID:       c.ID,
			Name:     c.Name,
			Icon:     c.Icon,
			Services: svcs,
		})
	}

	return resp
}

// FromDomainService converts one service into a DTO
func FromDomainService(s *domain.Service) ServiceResponse {
	prices := make(map[string]int64, len(s.Prices))
	for size, price := range s.Prices {
		prices[string(size)] = price
	}

	return ServiceResponse{
		ID:     s.ID,
		Name:   s.Name,
		Icon:   s.Icon,
		Active: s.Active,
		Prices: prices,
	}
}
