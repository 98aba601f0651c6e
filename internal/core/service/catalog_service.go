package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripnest/tourism-platform/internal/core/domain"
	"github.com/tripnest/tourism-platform/internal/core/ports"
)

// CatalogService owns the write side of tags, categories, activities and
// itineraries.
type CatalogService struct {
	tags        ports.TagRepository
	categories  ports.CategoryRepository
	activities  ports.ActivityRepository
	itineraries ports.ItineraryRepository
	log         zerolog.Logger
	now         func() time.Time
}

func NewCatalogService(
	tags ports.TagRepository,
	categories ports.CategoryRepository,
	activities ports.ActivityRepository,
	itineraries ports.ItineraryRepository,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		tags:        tags,
		categories:  categories,
		activities:  activities,
		itineraries: itineraries,
		log:         log,
		now:         time.Now,
	}
}

// CreateActivity stores an activity owned by the session's advertiser.
func (s *CatalogService) CreateActivity(ctx context.Context, in ports.CreateActivityInput) (*domain.Activity, error) {
	if in.AdvertiserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if in.Price < 0 {
		return nil, domain.NewValidationError("price", "must not be negative")
	}

	activity := &domain.Activity{
		Name:             strings.TrimSpace(in.Name),
		Location:         strings.TrimSpace(in.Location),
		Date:             in.Date.UTC(),
		Price:            in.Price,
		SpecialDiscounts: in.SpecialDiscounts,
		BookingOpen:      in.BookingOpen,
		AdvertiserID:     in.AdvertiserID,
		TagIDs:           dedupe(in.TagIDs),
		CategoryIDs:      dedupe(in.CategoryIDs),
		CreatedAt:        s.now().UTC(),
	}

	created, err := s.activities.Create(ctx, activity)
	if err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}
	s.log.Info().Str("activity_id", created.ID).Str("advertiser_id", in.AdvertiserID).Msg("activity created")
	return created, nil
}

// CreateItinerary stores an itinerary owned by the session's tour guide.
// Every referenced activity must exist.
func (s *CatalogService) CreateItinerary(ctx context.Context, in ports.CreateItineraryInput) (*domain.Itinerary, error) {
	if in.TourGuideID == "" {
		return nil, domain.ErrUnauthorized
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.NewValidationError("title", "is required")
	}
	if in.Price < 0 {
		return nil, domain.NewValidationError("price", "must not be negative")
	}

	activityIDs := dedupe(in.ActivityIDs)
	if len(activityIDs) > 0 {
		n, err := s.activities.CountByIDs(ctx, activityIDs)
		if err != nil {
			return nil, fmt.Errorf("create itinerary: %w", err)
		}
		if n != len(activityIDs) {
			return nil, domain.NewValidationError("activities", "reference unknown activities")
		}
	}

	itinerary := &domain.Itinerary{
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		Language:       in.Language,
		Price:          in.Price,
		AvailableDates: in.AvailableDates,
		TourGuideID:    in.TourGuideID,
		ActivityIDs:    activityIDs,
		CreatedAt:      s.now().UTC(),
	}

	created, err := s.itineraries.Create(ctx, itinerary)
	if err != nil {
		return nil, fmt.Errorf("create itinerary: %w", err)
	}
	s.log.Info().Str("itinerary_id", created.ID).Str("tour_guide_id", in.TourGuideID).Msg("itinerary created")
	return created, nil
}

func (s *CatalogService) CreateTag(ctx context.Context, tagType, period string) (*domain.Tag, error) {
	tagType = strings.TrimSpace(tagType)
	if tagType == "" {
		return nil, domain.NewValidationError("type", "is required")
	}
	return s.tags.Create(ctx, &domain.Tag{Type: tagType, Period: strings.TrimSpace(period)})
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	return s.categories.Create(ctx, &domain.Category{Name: name})
}

func (s *CatalogService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	return s.tags.List(ctx)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

// dedupe drops empty and repeated ids, keeping first-seen order.
func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
