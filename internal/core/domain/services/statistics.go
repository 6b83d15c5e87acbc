package services

import (
	"postal/internal/core/domain/model/parcel"
)

// ParcelStatistics is the aggregate summary of a filtered parcel set.
// The count maps always contain every enum variant, zero-filled when absent
// from the set. The four extremal parcels are nil for an empty set.
type ParcelStatistics struct {
	TotalParcels  int64
	AverageWeight float64
	AveragePrice  float64

	CountByStatus   map[parcel.Status]int64
	CountByTier     map[parcel.DeliveryTier]int64
	CountByCategory map[parcel.Category]int64

	MostExpensive *parcel.Parcel
	Cheapest      *parcel.Parcel
	Heaviest      *parcel.Parcel
	Lightest      *parcel.Parcel
}

// BuildParcelStatistics reduces a parcel set into one ParcelStatistics in a
// single pass.
//
// Averages are 0, not NaN, for an empty set. Counts and averages are
// independent of input ordering. Extremal tie-breaks are order-dependent by
// design: the first element seeds all four extremes and a later element
// replaces one only on strict improvement, so the first occurrence wins ties
// deterministically.
func BuildParcelStatistics(parcels []*parcel.Parcel) ParcelStatistics {
	stats := ParcelStatistics{
		TotalParcels:    int64(len(parcels)),
		CountByStatus:   make(map[parcel.Status]int64, len(parcel.AllStatuses())),
		CountByTier:     make(map[parcel.DeliveryTier]int64, len(parcel.AllTiers())),
		CountByCategory: make(map[parcel.Category]int64, len(parcel.AllCategories())),
	}

	for _, status := range parcel.AllStatuses() {
		stats.CountByStatus[status] = 0
	}
	for _, tier := range parcel.AllTiers() {
		stats.CountByTier[tier] = 0
	}
	for _, category := range parcel.AllCategories() {
		stats.CountByCategory[category] = 0
	}

	var totalWeight, totalPrice float64

	for _, p := range parcels {
		totalWeight += p.Weight()
		totalPrice += p.Price()

		stats.CountByStatus[p.Status()]++
		stats.CountByTier[p.Tier()]++
		stats.CountByCategory[p.Category()]++

		if stats.MostExpensive == nil || p.Price() > stats.MostExpensive.Price() {
			stats.MostExpensive = p
		}
		if stats.Cheapest == nil || p.Price() < stats.Cheapest.Price() {
			stats.Cheapest = p
		}
		if stats.Heaviest == nil || p.Weight() > stats.Heaviest.Weight() {
			stats.Heaviest = p
		}
		if stats.Lightest == nil || p.Weight() < stats.Lightest.Weight() {
			stats.Lightest = p
		}
	}

	if stats.TotalParcels > 0 {
		stats.AverageWeight = totalWeight / float64(stats.TotalParcels)
		stats.AveragePrice = totalPrice / float64(stats.TotalParcels)
	}

	return stats
}
