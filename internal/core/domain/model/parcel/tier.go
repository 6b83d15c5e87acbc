package parcel

import (
	"fmt"

	"postal/internal/pkg/errs"
)

// DeliveryTier categorizes the delivery service level of a parcel.
// Each tier maps to exactly one pricing tariff.
type DeliveryTier int

const (
	// TierUnknown represents an absent or undefined tier. A creation request
	// carrying TierUnknown resolves to TierDefault before pricing.
	TierUnknown DeliveryTier = iota

	// TierDefault is the standard delivery service.
	TierDefault

	// TierExpress is the expedited delivery service, priced above standard.
	TierExpress

	// TierEconom is the economical delivery service, priced below standard.
	TierEconom
)

func getTierStrings() map[DeliveryTier]string {
	//nolint:exhaustive // TierUnknown is intentionally excluded as it's invalid
	return map[DeliveryTier]string{
		TierDefault: "DEFAULT",
		TierExpress: "EXPRESS",
		TierEconom:  "ECONOM",
	}
}

// AllTiers returns every valid delivery tier in declaration order.
func AllTiers() []DeliveryTier {
	return []DeliveryTier{TierDefault, TierExpress, TierEconom}
}

// Validate checks if the DeliveryTier value is valid.
func (t DeliveryTier) Validate() error {
	if _, ok := getTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery tier is invalid", fmt.Errorf("%d is not a valid delivery tier", t))
	}
	return nil
}

// String returns the wire name of the tier, or "UNKNOWN" for invalid values.
func (t DeliveryTier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// TierFromString parses a delivery tier from its wire name.
func TierFromString(s string) (DeliveryTier, error) {
	for tier, str := range getTierStrings() {
		if str == s {
			return tier, nil
		}
	}
	return TierUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery tier is invalid",
		fmt.Errorf("%q is not a valid delivery tier name", s),
	)
}
