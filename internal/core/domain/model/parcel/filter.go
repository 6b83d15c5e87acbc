package parcel

import (
	"slices"

	"postal/internal/core/domain/model/kernel"
)

// Filter is a sparse set of optional search criteria over parcels.
// The zero value matches every parcel; each present field narrows the result
// with an AND semantics:
//
//   - TrackingToken: exact match on the opaque token
//   - SenderID, RecipientID, OriginOfficeID, DestinationOfficeID:
//     reference-id equality
//   - FromWeight/ToWeight, FromPrice/ToPrice: inclusive bounds, each bound
//     supplied independently
//   - Statuses, Tiers, Categories: set membership; an empty slice means
//     unconstrained
//
// A single Filter value is reused by both the paginated listing query and
// the full-scan statistics query; Matches is the reference semantics every
// storage adapter must reproduce.
type Filter struct {
	TrackingToken string

	SenderID            *kernel.UUID
	RecipientID         *kernel.UUID
	OriginOfficeID      *kernel.UUID
	DestinationOfficeID *kernel.UUID

	FromWeight *float64
	ToWeight   *float64
	FromPrice  *float64
	ToPrice    *float64

	Statuses   []Status
	Tiers      []DeliveryTier
	Categories []Category
}

// IsEmpty reports whether the filter carries no constraint at all.
func (f Filter) IsEmpty() bool {
	return f.TrackingToken == "" &&
		f.SenderID == nil && f.RecipientID == nil &&
		f.OriginOfficeID == nil && f.DestinationOfficeID == nil &&
		f.FromWeight == nil && f.ToWeight == nil &&
		f.FromPrice == nil && f.ToPrice == nil &&
		len(f.Statuses) == 0 && len(f.Tiers) == 0 && len(f.Categories) == 0
}

// Matches evaluates the conjunction of all present constraints against a
// parcel. Absent fields contribute no constraint, so the zero-value filter
// returns true for every parcel. Matches has no side effects.
func (f Filter) Matches(p *Parcel) bool {
	if p == nil {
		return false
	}

	if f.TrackingToken != "" && p.TrackingToken() != f.TrackingToken {
		return false
	}

	if f.SenderID != nil && !p.Sender().IsEqual(*f.SenderID) {
		return false
	}
	if f.RecipientID != nil && !p.Recipient().IsEqual(*f.RecipientID) {
		return false
	}
	if f.OriginOfficeID != nil && !p.Origin().IsEqual(*f.OriginOfficeID) {
		return false
	}
	if f.DestinationOfficeID != nil && !p.Destination().IsEqual(*f.DestinationOfficeID) {
		return false
	}

	if f.FromWeight != nil && p.Weight() < *f.FromWeight {
		return false
	}
	if f.ToWeight != nil && p.Weight() > *f.ToWeight {
		return false
	}
	if f.FromPrice != nil && p.Price() < *f.FromPrice {
		return false
	}
	if f.ToPrice != nil && p.Price() > *f.ToPrice {
		return false
	}

	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, p.Status()) {
		return false
	}
	if len(f.Tiers) > 0 && !slices.Contains(f.Tiers, p.Tier()) {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category()) {
		return false
	}

	return true
}
