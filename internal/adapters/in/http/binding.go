package http

import (
	"strconv"
	"strings"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"
	"postal/internal/core/domain/model/parcel"
	"postal/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// parseParcelFilter builds a parcel filter from query parameters. Every
// parameter is optional; enum-valued parameters accept comma-separated wire
// names.
func parseParcelFilter(ctx echo.Context) (parcel.Filter, error) {
	var filter parcel.Filter

	filter.TrackingToken = ctx.QueryParam("trackingToken")

	var err error
	if filter.SenderID, err = parseOptionalUUID(ctx, "senderId"); err != nil {
		return parcel.Filter{}, err
	}
	if filter.RecipientID, err = parseOptionalUUID(ctx, "recipientId"); err != nil {
		return parcel.Filter{}, err
	}
	if filter.OriginOfficeID, err = parseOptionalUUID(ctx, "originOfficeId"); err != nil {
		return parcel.Filter{}, err
	}
	if filter.DestinationOfficeID, err = parseOptionalUUID(ctx, "destinationOfficeId"); err != nil {
		return parcel.Filter{}, err
	}

	if filter.FromWeight, err = parseOptionalFloat(ctx, "fromWeight"); err != nil {
		return parcel.Filter{}, err
	}
	if filter.ToWeight, err = parseOptionalFloat(ctx, "toWeight"); err != nil {
		return parcel.Filter{}, err
	}
	if filter.FromPrice, err = parseOptionalFloat(ctx, "fromPrice"); err != nil {
		return parcel.Filter{}, err
	}
	if filter.ToPrice, err = parseOptionalFloat(ctx, "toPrice"); err != nil {
		return parcel.Filter{}, err
	}

	for _, name := range splitList(ctx.QueryParam("statuses")) {
		status, parseErr := parcel.StatusFromString(name)
		if parseErr != nil {
			return parcel.Filter{}, parseErr
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	for _, name := range splitList(ctx.QueryParam("deliveryTiers")) {
		tier, parseErr := parcel.TierFromString(name)
		if parseErr != nil {
			return parcel.Filter{}, parseErr
		}
		filter.Tiers = append(filter.Tiers, tier)
	}
	for _, name := range splitList(ctx.QueryParam("categories")) {
		category, parseErr := parcel.CategoryFromString(name)
		if parseErr != nil {
			return parcel.Filter{}, parseErr
		}
		filter.Categories = append(filter.Categories, category)
	}

	return filter, nil
}

// parseOfficeFilter builds an office filter from query parameters.
func parseOfficeFilter(ctx echo.Context) office.Filter {
	return office.Filter{
		Name:     ctx.QueryParam("name"),
		City:     ctx.QueryParam("city"),
		Postcode: ctx.QueryParam("postcode"),
		Street:   ctx.QueryParam("street"),
	}
}

// parsePage reads the optional page/size pair. Absent or non-positive size
// means no pagination.
func parsePage(ctx echo.Context) (*ports.Page, error) {
	sizeParam := ctx.QueryParam("size")
	if sizeParam == "" {
		return nil, nil //nolint:nilnil //absent page is a valid outcome
	}

	size, err := strconv.Atoi(sizeParam)
	if err != nil || size <= 0 {
		return nil, echo.ErrBadRequest
	}

	number := 0
	if pageParam := ctx.QueryParam("page"); pageParam != "" {
		number, err = strconv.Atoi(pageParam)
		if err != nil || number < 0 {
			return nil, echo.ErrBadRequest
		}
	}

	return &ports.Page{Number: number, Size: size}, nil
}

func parseOptionalUUID(ctx echo.Context, name string) (*kernel.UUID, error) {
	value := ctx.QueryParam(name)
	if value == "" {
		return nil, nil //nolint:nilnil //absent parameter is a valid outcome
	}

	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func parseOptionalFloat(ctx echo.Context, name string) (*float64, error) {
	value := ctx.QueryParam(name)
	if value == "" {
		return nil, nil //nolint:nilnil //absent parameter is a valid outcome
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}

	return &f, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}

	return names
}
