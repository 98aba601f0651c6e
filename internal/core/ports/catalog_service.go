package ports

import (
	"context"
	"time"

	"github.com/tripnest/tourism-platform/internal/core/domain"
)

// CreateActivityInput is the payload for a new activity. AdvertiserID comes
// from the authenticated session, never from the client.
type CreateActivityInput struct {
	AdvertiserID     string
	Name             string
	Location         string
	Date             time.Time
	Price            float64
	SpecialDiscounts string
	BookingOpen      bool
	TagIDs           []string
	CategoryIDs      []string
}

// CreateItineraryInput is the payload for a new itinerary. TourGuideID comes
// from the authenticated session.
type CreateItineraryInput struct {
	TourGuideID    string
	Title          string
	Description    string
	Language       string
	Price          float64
	AvailableDates []time.Time
	ActivityIDs    []string
}

type CatalogService interface {
	CreateActivity(ctx context.Context, input CreateActivityInput) (*domain.Activity, error)
	CreateItinerary(ctx context.Context, input CreateItineraryInput) (*domain.Itinerary, error)
	CreateTag(ctx context.Context, tagType, period string) (*domain.Tag, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	ListTags(ctx context.Context) ([]*domain.Tag, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}
