package session

import (
	"math"
	"time"

	"tutorlink/internal/domain/offer"
)

// DefaultFeeRate is the platform's cut of every session price.
const DefaultFeeRate = 0.10

type PriceCalculator interface {
	CalculatePrice(hourlyRate offer.Points, duration time.Duration) offer.Points
	CalculateFee(price offer.Points) offer.Points
}

// HourlyPriceCalculator prices sessions from the offer's hourly rate.
// Durations are billed in half-hour increments, rounded to the nearest
// half hour, and the fee is rounded half up so the platform never loses
// a fractional point to truncation.
type HourlyPriceCalculator struct {
	FeeRate float64
}

func NewHourlyPriceCalculator(feeRate float64) *HourlyPriceCalculator {
	if feeRate <= 0 || feeRate >= 1 {
		feeRate = DefaultFeeRate
	}
	return &HourlyPriceCalculator{FeeRate: feeRate}
}

func (pc *HourlyPriceCalculator) CalculatePrice(hourlyRate offer.Points, duration time.Duration) offer.Points {
	hours := BillableHours(duration)
	points := int64(math.Floor(float64(hourlyRate.Value())*hours + 0.5))
	price, _ := offer.NewPoints(points)
	return price
}

func (pc *HourlyPriceCalculator) CalculateFee(price offer.Points) offer.Points {
	raw := float64(price.Value()) * pc.FeeRate
	fee, _ := offer.NewPoints(int64(math.Floor(raw + 0.5)))
	return fee
}

// BillableHours converts a raw duration into billable hours, rounded
// to the nearest half hour.
func BillableHours(d time.Duration) float64 {
	return math.Round(d.Hours()*2) / 2
}
