package parcel

import (
	"errors"
	"fmt"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel. This ensures all parcels
	// are properly validated.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Parcel represents a shipment moving between post offices. It is the
// aggregate root that manages the parcel lifecycle from creation through
// dispatch to delivery.
//
// Parcel follows these invariants:
//   - Must have a valid unique identifier and a non-empty tracking token
//   - The tracking token is globally unique and immutable after creation
//   - Weight must be positive; price must be non-negative
//   - Price is always derived from weight and delivery tier at creation
//     time and is never user-supplied
//   - Can only be created through NewParcel or RestoreParcel
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Parcel struct {
	// id is the unique identifier for the parcel
	id kernel.UUID

	// trackingToken is the opaque public identifier, immutable after creation
	trackingToken string

	// senderID references the client who sent the parcel
	senderID kernel.UUID

	// recipientID references the client who receives the parcel
	recipientID kernel.UUID

	// weight is the parcel weight in kilograms (must be positive)
	weight float64

	// price is the delivery price computed from weight and tier
	price float64

	// status is the current state in the delivery lifecycle
	status Status

	// tier is the delivery service level that determined the price
	tier DeliveryTier

	// category describes the parcel contents, for statistics grouping
	category Category

	// originID references the post office where the parcel was registered
	originID kernel.UUID

	// destinationID references the post office where the parcel is delivered
	destinationID kernel.UUID

	// isConstructed ensures the parcel was created via a constructor
	isConstructed bool
}

// NewParcel creates a new Parcel in Created status with validation.
// The price must already be computed from the weight and tier; the aggregate
// only verifies it is non-negative. Returns a validation error if any
// argument is invalid.
func NewParcel(
	id kernel.UUID,
	trackingToken string,
	senderID kernel.UUID,
	recipientID kernel.UUID,
	weight float64,
	price float64,
	tier DeliveryTier,
	category Category,
	originID kernel.UUID,
	destinationID kernel.UUID,
) (*Parcel, error) {
	parcel := &Parcel{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setTrackingToken(trackingToken),
		parcel.setSender(senderID),
		parcel.setRecipient(recipientID),
		parcel.setWeight(weight),
		parcel.setPrice(price),
		parcel.setTier(tier),
		parcel.setCategory(category),
		parcel.setOrigin(originID),
		parcel.setDestination(destinationID),
	); err != nil {
		return nil, err
	}

	return parcel, nil
}

// RestoreParcel reconstructs a Parcel from persistence with an explicit
// status. It applies the same field validation as NewParcel plus a status
// validity check.
func RestoreParcel(
	id kernel.UUID,
	trackingToken string,
	senderID kernel.UUID,
	recipientID kernel.UUID,
	weight float64,
	price float64,
	status Status,
	tier DeliveryTier,
	category Category,
	originID kernel.UUID,
	destinationID kernel.UUID,
) (*Parcel, error) {
	parcel, err := NewParcel(id, trackingToken, senderID, recipientID, weight, price, tier, category, originID, destinationID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	parcel.status = status

	return parcel, nil
}

// Validate ensures the Parcel instance was properly constructed.
// Returns ErrParcelIsNotConstructed otherwise. This method should be called
// when reconstructing parcels from persistence to ensure data integrity.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}

	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingToken returns the parcel's opaque public identifier.
func (p *Parcel) TrackingToken() string {
	return p.trackingToken
}

// Sender returns the sending client's identifier.
func (p *Parcel) Sender() kernel.UUID {
	return p.senderID
}

// Recipient returns the receiving client's identifier.
func (p *Parcel) Recipient() kernel.UUID {
	return p.recipientID
}

// Weight returns the parcel weight in kilograms.
func (p *Parcel) Weight() float64 {
	return p.weight
}

// Price returns the computed delivery price.
func (p *Parcel) Price() float64 {
	return p.price
}

// Status returns the current status of the parcel.
func (p *Parcel) Status() Status {
	return p.status
}

// Tier returns the delivery tier of the parcel.
func (p *Parcel) Tier() DeliveryTier {
	return p.tier
}

// Category returns the content category of the parcel.
func (p *Parcel) Category() Category {
	return p.category
}

// Origin returns the origin post office identifier.
func (p *Parcel) Origin() kernel.UUID {
	return p.originID
}

// Destination returns the destination post office identifier.
func (p *Parcel) Destination() kernel.UUID {
	return p.destinationID
}

// Send advances the parcel for a dispatch operation.
//
// Business rules:
//   - Only legal from Created or InTransit
//   - From Created the parcel advances to InTransit
//   - From InTransit the status stays unchanged (re-dispatch)
//
// Returns an error naming the current status if dispatch is not allowed.
func (p *Parcel) Send() error {
	newStatus, err := p.status.Send()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// SetStatus sets the status to an arbitrary valid target value.
//
// Unlike Send, this path performs no transition-legality check: it can move
// a parcel from Created straight to Delivered, or backward. The target value
// itself must still be a valid status. Callers own the decision of which
// audit entries, if any, the change produces.
func (p *Parcel) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	p.status = status
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("trackingToken")
	}
	p.trackingToken = token
	return nil
}

func (p *Parcel) setSender(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("senderId", err)
	}
	p.senderID = id
	return nil
}

func (p *Parcel) setRecipient(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipientId", err)
	}
	p.recipientID = id
	return nil
}

func (p *Parcel) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%g is not greater than 0", weight))
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%g is negative", price))
	}
	p.price = price
	return nil
}

func (p *Parcel) setTier(tier DeliveryTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	p.tier = tier
	return nil
}

func (p *Parcel) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Parcel) setOrigin(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("originPostOfficeId", err)
	}
	p.originID = id
	return nil
}

func (p *Parcel) setDestination(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destinationPostOfficeId", err)
	}
	p.destinationID = id
	return nil
}
