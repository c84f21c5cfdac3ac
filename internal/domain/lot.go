package domain

import "time"

// Lot a physical parking facility
type Lot struct {
	ID       int64
	Name     string
	Capacity int
	// BaseFee flat fee charged once per booking, whole ISK
	BaseFee int64
	// DailyRates per size class, whole ISK; every lot must carry a rate
	// for every size class it accepts
	DailyRates map[SizeClass]int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RateCardFor returns the rate card for the given size class
func (l *Lot) RateCardFor(size SizeClass) (RateCard, bool) {
	rate, ok := l.DailyRates[size]
	if !ok {
		return RateCard{}, false
	}
	return RateCard{BaseFee: l.BaseFee, DailyRate: rate}, true
}
