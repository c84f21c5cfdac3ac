package domain

import "time"

// RateCard pricing inputs for one lot and size class
type RateCard struct {
	BaseFee   int64 // flat fee per booking, whole ISK
	DailyRate int64 // per billed day, whole ISK
}

// StayQuote result of pricing a parking stay
type StayQuote struct {
	TotalDays   int
	PricePerDay int64
	BasePrice   int64
}

// CalculateStay prices a parking stay.
//
// The billed day count is the difference between the pick-up and drop-off
// calendar dates, floored at 1: dropping off at 10:00 and picking up five
// days later at 14:00 bills five days, not six. The caller must reject
// pickUp <= dropOff before calling.
func CalculateStay(rate RateCard, dropOff, pickUp time.Time) StayQuote {
	days := daysBetween(dropOff, pickUp)
	if days < 1 {
		days = 1
	}

	return StayQuote{
		TotalDays:   days,
		PricePerDay: rate.DailyRate,
		BasePrice:   rate.BaseFee + rate.DailyRate*int64(days),
	}
}

// daysBetween counts calendar days from the date of a to the date of b,
// ignoring the time of day on both ends
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
