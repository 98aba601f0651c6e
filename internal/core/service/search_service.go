package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tripnest/tourism-platform/internal/core/domain"
	"github.com/tripnest/tourism-platform/internal/core/ports"
)

// SearchService resolves free-text queries against activities and
// itineraries. An entity matches when its own text fields contain the
// term, or when any tag, category or (for itineraries) activity it
// references matches the same term.
type SearchService struct {
	tags        ports.TagRepository
	categories  ports.CategoryRepository
	activities  ports.ActivityRepository
	itineraries ports.ItineraryRepository
	log         zerolog.Logger
}

func NewSearchService(
	tags ports.TagRepository,
	categories ports.CategoryRepository,
	activities ports.ActivityRepository,
	itineraries ports.ItineraryRepository,
	log zerolog.Logger,
) *SearchService {
	return &SearchService{
		tags:        tags,
		categories:  categories,
		activities:  activities,
		itineraries: itineraries,
		log:         log,
	}
}

// SearchActivities returns every activity when term is blank.
func (s *SearchService) SearchActivities(ctx context.Context, term string) ([]*domain.Activity, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.activities.List(ctx)
	}

	ids, err := s.activityIDsByReference(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search activities: %w", err)
	}

	out, err := s.activities.FindMatching(ctx, domain.TextMatch{Term: term, IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("search activities: %w", err)
	}
	s.log.Debug().Str("term", term).Int("by_reference", len(ids)).Int("results", len(out)).Msg("activity search")
	return out, nil
}

// activityIDsByReference collects the ids of activities that reference a
// tag whose type, or a category whose name, contains term.
func (s *SearchService) activityIDsByReference(ctx context.Context, term string) ([]string, error) {
	tagIDs, err := s.tags.MatchIDs(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("match tags: %w", err)
	}
	categoryIDs, err := s.categories.MatchIDs(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("match categories: %w", err)
	}
	if len(tagIDs) == 0 && len(categoryIDs) == 0 {
		return nil, nil
	}

	tagSet, categorySet := toSet(tagIDs), toSet(categoryIDs)
	var ids []string
	err = s.activities.ScanRefs(ctx, func(ref domain.ActivityRefs) error {
		if intersects(ref.TagIDs, tagSet) || intersects(ref.CategoryIDs, categorySet) {
			ids = append(ids, ref.ID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan activities: %w", err)
	}
	return ids, nil
}

// SearchItineraries returns every itinerary when term is blank. Otherwise
// an itinerary matches on its own title or description, or when any of its
// activities is in SearchActivities(term).
func (s *SearchService) SearchItineraries(ctx context.Context, term string) ([]*domain.Itinerary, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.itineraries.List(ctx)
	}

	activities, err := s.SearchActivities(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search itineraries: %w", err)
	}

	var ids []string
	if len(activities) > 0 {
		activitySet := make(map[string]struct{}, len(activities))
		for _, a := range activities {
			activitySet[a.ID] = struct{}{}
		}
		err = s.itineraries.ScanRefs(ctx, func(ref domain.ItineraryRefs) error {
			if intersects(ref.ActivityIDs, activitySet) {
				ids = append(ids, ref.ID)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("search itineraries: scan: %w", err)
		}
	}

	out, err := s.itineraries.FindMatching(ctx, domain.TextMatch{Term: term, IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("search itineraries: %w", err)
	}
	s.log.Debug().Str("term", term).Int("by_reference", len(ids)).Int("results", len(out)).Msg("itinerary search")
	return out, nil
}

func (s *SearchService) ActivitiesByAdvertiser(ctx context.Context, advertiserID string) ([]*domain.Activity, error) {
	if advertiserID == "" {
		return nil, domain.NewValidationError("advertiser_id", "is required")
	}
	return s.activities.FindByAdvertiser(ctx, advertiserID)
}

func (s *SearchService) ItinerariesByTourGuide(ctx context.Context, tourGuideID string) ([]*domain.Itinerary, error) {
	if tourGuideID == "" {
		return nil, domain.NewValidationError("tour_guide_id", "is required")
	}
	return s.itineraries.FindByTourGuide(ctx, tourGuideID)
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func intersects(ids []string, set map[string]struct{}) bool {
	if len(set) == 0 {
		return false
	}
	for _, id := range ids {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}
