package services

import (
	"postal/internal/core/domain/model/parcel"
	"postal/internal/pkg/errs"
)

// Tariff defines the linear pricing function of one delivery tier:
// price = weight*Rate + BaseFee.
type Tariff struct {
	Rate    float64
	BaseFee float64
}

// Apply computes the price for the given weight.
func (t Tariff) Apply(weight float64) float64 {
	return weight*t.Rate + t.BaseFee
}

// PriceCalculator maps each delivery tier to its tariff through a fixed
// dispatch table. The table is built once at construction, so pricing has no
// registration-order dependence and no internal state.
type PriceCalculator struct {
	tariffs map[parcel.DeliveryTier]Tariff
}

// NewPriceCalculator creates a calculator with the standard tariff table.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{
		tariffs: map[parcel.DeliveryTier]Tariff{
			parcel.TierDefault: {Rate: 0.2, BaseFee: 400},
			parcel.TierExpress: {Rate: 0.3, BaseFee: 600},
			parcel.TierEconom:  {Rate: 0.1, BaseFee: 200},
		},
	}
}

// Price computes the delivery price for the given tier and weight.
// Returns an ObjectNotFoundError naming the tier when no tariff is
// registered for it.
func (c PriceCalculator) Price(tier parcel.DeliveryTier, weight float64) (float64, error) {
	tariff, ok := c.tariffs[tier]
	if !ok {
		return 0, errs.NewObjectNotFoundError("deliveryTier", tier.String())
	}

	return tariff.Apply(weight), nil
}
