package domain

import "time"

// SizeClass vehicle size class, used purely as a pricing lookup key
type SizeClass string

const (
	SizeSmall SizeClass = "small"
	SizeSedan SizeClass = "sedan"
	SizeSUV   SizeClass = "suv"
	SizeVan   SizeClass = "van"
)

// SizeClasses all known size classes, in display order
var SizeClasses = []SizeClass{SizeSmall, SizeSedan, SizeSUV, SizeVan}

// ValidSizeClass reports whether s is a known size class
func ValidSizeClass(s SizeClass) bool {
	for _, v := range SizeClasses {
		if v == s {
			return true
		}
	}
	return false
}

// ServiceCategory groups catalog services for display
type ServiceCategory struct {
	ID        int64
	Name      string
	Icon      string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Service a bookable add-on from the catalog (wash, charging, ...)
type Service struct {
	ID         int64
	CategoryID int64
	Name       string
	Icon       string
	Active     bool
	// Prices per size class in whole ISK; a missing class means the
	// service is not offered for that vehicle size
	Prices    map[SizeClass]int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PriceFor returns the price for the given size class
func (s *Service) PriceFor(size SizeClass) (int64, bool) {
	price, ok := s.Prices[size]
	return price, ok
}
