package ports

import (
	"context"

	"github.com/tripnest/tourism-platform/internal/core/domain"
)

// SearchService answers free-text relevance queries and owner listings.
// An empty term means no filter.
type SearchService interface {
	SearchActivities(ctx context.Context, term string) ([]*domain.Activity, error)
	SearchItineraries(ctx context.Context, term string) ([]*domain.Itinerary, error)
	ActivitiesByAdvertiser(ctx context.Context, advertiserID string) ([]*domain.Activity, error)
	ItinerariesByTourGuide(ctx context.Context, tourGuideID string) ([]*domain.Itinerary, error)
}
