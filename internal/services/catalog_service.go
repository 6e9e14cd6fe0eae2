package services

import (
	"context"
	"fmt"

	"tripzy/internal/domain"
	"tripzy/internal/domain/models"
	"tripzy/internal/utils"
)

type CatalogService struct {
	API       BookingAPI
	RequestID string
}

// ListTrips fetches the catalog once per page view.
func (s CatalogService) ListTrips(ctx context.Context) ([]models.Trip, error) {
	trips, err := s.API.ListTrips(ctx)
	if err != nil {
		return nil, err
	}
	utils.LogEvent(s.RequestID, "catalog", "list_trips", fmt.Sprintf("count=%d", len(trips)))
	return trips, nil
}

// FindTrip selects one trip out of the full list; the booking service has no
// single-trip endpoint.
func (s CatalogService) FindTrip(ctx context.Context, id models.ID) (models.Trip, error) {
	if id.IsZero() {
		return models.Trip{}, domain.ValidationError{Field: "tripId", Msg: "trip id is required"}
	}
	trips, err := s.API.ListTrips(ctx)
	if err != nil {
		return models.Trip{}, err
	}
	for _, t := range trips {
		if t.ID.Same(id) {
			return t, nil
		}
	}
	return models.Trip{}, domain.NotFoundError{Resource: "trip"}
}
