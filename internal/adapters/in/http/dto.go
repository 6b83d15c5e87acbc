package http

import (
	"postal/internal/core/domain/model/audit"
	"postal/internal/core/domain/model/client"
	"postal/internal/core/domain/model/office"
	"postal/internal/core/domain/model/parcel"
	"postal/internal/core/domain/model/staff"
	"postal/internal/core/domain/services"
	"time"
)

// Error is the uniform error payload of the REST surface.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateParcelRequest is the payload for registering a new parcel.
// DeliveryTier is optional; the system falls back to the default tier.
type CreateParcelRequest struct {
	SenderID            string  `json:"senderId"             validate:"required,uuid"`
	RecipientID         string  `json:"recipientId"          validate:"required,uuid"`
	Weight              float64 `json:"weight"               validate:"required,gt=0"`
	DeliveryTier        string  `json:"deliveryTier"         validate:"omitempty"`
	Category            string  `json:"category"             validate:"required"`
	OriginOfficeID      string  `json:"originOfficeId"       validate:"required,uuid"`
	DestinationOfficeID string  `json:"destinationOfficeId"  validate:"required,uuid"`
}

// UpdateParcelStatusRequest is the payload for the direct status-set
// operation.
type UpdateParcelStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ParcelResponse is the wire representation of a parcel.
type ParcelResponse struct {
	ID                  string  `json:"id"`
	TrackingToken       string  `json:"trackingToken"`
	SenderID            string  `json:"senderId"`
	RecipientID         string  `json:"recipientId"`
	Weight              float64 `json:"weight"`
	Price               float64 `json:"price"`
	Status              string  `json:"status"`
	DeliveryTier        string  `json:"deliveryTier"`
	Category            string  `json:"category"`
	OriginOfficeID      string  `json:"originOfficeId"`
	DestinationOfficeID string  `json:"destinationOfficeId"`
}

func parcelToResponse(p *parcel.Parcel) ParcelResponse {
	return ParcelResponse{
		ID:                  p.ID().String(),
		TrackingToken:       p.TrackingToken(),
		SenderID:            p.Sender().String(),
		RecipientID:         p.Recipient().String(),
		Weight:              p.Weight(),
		Price:               p.Price(),
		Status:              p.Status().String(),
		DeliveryTier:        p.Tier().String(),
		Category:            p.Category().String(),
		OriginOfficeID:      p.Origin().String(),
		DestinationOfficeID: p.Destination().String(),
	}
}

func parcelsToResponse(parcels []*parcel.Parcel) []ParcelResponse {
	response := make([]ParcelResponse, len(parcels))
	for i, p := range parcels {
		response[i] = parcelToResponse(p)
	}
	return response
}

// StatisticsResponse is the wire representation of aggregate parcel
// statistics. Count maps are keyed by wire enum names and always carry every
// variant; extremal parcels are omitted for an empty population.
type StatisticsResponse struct {
	TotalParcels  int64   `json:"totalParcels"`
	AverageWeight float64 `json:"averageWeight"`
	AveragePrice  float64 `json:"averagePrice"`

	CountByStatus   map[string]int64 `json:"countByStatus"`
	CountByTier     map[string]int64 `json:"countByDeliveryTier"`
	CountByCategory map[string]int64 `json:"countByCategory"`

	MostExpensive *ParcelResponse `json:"mostExpensiveParcel,omitempty"`
	Cheapest      *ParcelResponse `json:"cheapestParcel,omitempty"`
	Heaviest      *ParcelResponse `json:"heaviestParcel,omitempty"`
	Lightest      *ParcelResponse `json:"lightestParcel,omitempty"`
}

func statisticsToResponse(stats services.ParcelStatistics) StatisticsResponse {
	response := StatisticsResponse{
		TotalParcels:    stats.TotalParcels,
		AverageWeight:   stats.AverageWeight,
		AveragePrice:    stats.AveragePrice,
		CountByStatus:   make(map[string]int64, len(stats.CountByStatus)),
		CountByTier:     make(map[string]int64, len(stats.CountByTier)),
		CountByCategory: make(map[string]int64, len(stats.CountByCategory)),
	}

	for status, count := range stats.CountByStatus {
		response.CountByStatus[status.String()] = count
	}
	for tier, count := range stats.CountByTier {
		response.CountByTier[tier.String()] = count
	}
	for category, count := range stats.CountByCategory {
		response.CountByCategory[category.String()] = count
	}

	response.MostExpensive = optionalParcel(stats.MostExpensive)
	response.Cheapest = optionalParcel(stats.Cheapest)
	response.Heaviest = optionalParcel(stats.Heaviest)
	response.Lightest = optionalParcel(stats.Lightest)

	return response
}

func optionalParcel(p *parcel.Parcel) *ParcelResponse {
	if p == nil {
		return nil
	}
	resp := parcelToResponse(p)
	return &resp
}

// AuditEntryResponse is the wire representation of one audit trail entry.
type AuditEntryResponse struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Action     string    `json:"action"`
	ParcelID   string    `json:"parcelId"`
	EmployeeID string    `json:"employeeId"`
	OfficeID   string    `json:"postOfficeId"`
}

func auditEntriesToResponse(entries []*audit.Entry) []AuditEntryResponse {
	response := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		response[i] = AuditEntryResponse{
			ID:         e.ID().String(),
			Timestamp:  e.Timestamp(),
			Action:     e.Action().String(),
			ParcelID:   e.Parcel().String(),
			EmployeeID: e.Employee().String(),
			OfficeID:   e.Office().String(),
		}
	}
	return response
}

// OfficeRequest is the payload for creating or updating a post office.
type OfficeRequest struct {
	Name     string `json:"name"     validate:"required"`
	City     string `json:"city"     validate:"required"`
	Postcode string `json:"postcode"`
	Street   string `json:"street"`
}

// OfficeResponse is the wire representation of a post office.
type OfficeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Street   string `json:"street"`
}

func officeToResponse(o *office.Office) OfficeResponse {
	return OfficeResponse{
		ID:       o.ID().String(),
		Name:     o.Name(),
		City:     o.City(),
		Postcode: o.Postcode(),
		Street:   o.Street(),
	}
}

func officesToResponse(offices []*office.Office) []OfficeResponse {
	response := make([]OfficeResponse, len(offices))
	for i, o := range offices {
		response[i] = officeToResponse(o)
	}
	return response
}

// EmployeeRequest is the payload for creating or updating an employee.
type EmployeeRequest struct {
	FirstName string `json:"firstName"     validate:"required"`
	LastName  string `json:"lastName"      validate:"required"`
	Role      string `json:"role"          validate:"required"`
	OfficeID  string `json:"postOfficeId"  validate:"required,uuid"`
}

// EmployeeResponse is the wire representation of an employee.
type EmployeeResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	OfficeID  string `json:"postOfficeId"`
}

func employeeToResponse(e *staff.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID().String(),
		FirstName: e.FirstName(),
		LastName:  e.LastName(),
		Role:      e.Role().String(),
		OfficeID:  e.Office().String(),
	}
}

func employeesToResponse(employees []*staff.Employee) []EmployeeResponse {
	response := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		response[i] = employeeToResponse(e)
	}
	return response
}

// ClientRequest is the payload for creating or updating a client.
type ClientRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"omitempty,email"`
	Phone     string `json:"phone"`
}

// ClientResponse is the wire representation of a client.
type ClientResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func clientToResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID().String(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Email:     c.Email(),
		Phone:     c.Phone(),
	}
}

func clientsToResponse(clients []*client.Client) []ClientResponse {
	response := make([]ClientResponse, len(clients))
	for i, c := range clients {
		response[i] = clientToResponse(c)
	}
	return response
}
