package ports

import (
	"context"

	"github.com/tripnest/tourism-platform/internal/core/domain"
)

type TagRepository interface {
	Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	List(ctx context.Context) ([]*domain.Tag, error)
	// MatchIDs returns the ids of tags whose type contains term, case-insensitively.
	MatchIDs(ctx context.Context, term string) ([]string, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	// MatchIDs returns the ids of categories whose name contains term, case-insensitively.
	MatchIDs(ctx context.Context, term string) ([]string, error)
}

// ActivityRepository returns activities with tags, categories and the
// owning advertiser populated.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	// ScanRefs walks every activity in the collection, handing fn the
	// reference projection. A non-nil error from fn stops the walk.
	ScanRefs(ctx context.Context, fn func(domain.ActivityRefs) error) error
	// FindMatching executes the OR-query described by m: name or location
	// contains m.Term, or the id is in m.IDs.
	FindMatching(ctx context.Context, m domain.TextMatch) ([]*domain.Activity, error)
	FindByAdvertiser(ctx context.Context, advertiserID string) ([]*domain.Activity, error)
	// CountByIDs reports how many of ids exist.
	CountByIDs(ctx context.Context, ids []string) (int, error)
}

// ItineraryRepository returns itineraries with activities and the owning
// tour guide populated.
type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *domain.Itinerary) (*domain.Itinerary, error)
	List(ctx context.Context) ([]*domain.Itinerary, error)
	ScanRefs(ctx context.Context, fn func(domain.ItineraryRefs) error) error
	// FindMatching executes the OR-query described by m: title or
	// description contains m.Term, or the id is in m.IDs.
	FindMatching(ctx context.Context, m domain.TextMatch) ([]*domain.Itinerary, error)
	FindByTourGuide(ctx context.Context, tourGuideID string) ([]*domain.Itinerary, error)
}
