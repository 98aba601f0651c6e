package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tripnest/tourism-platform/internal/core/domain"
)

type itineraryDoc struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	Title          string               `bson:"title"`
	Description    string               `bson:"description"`
	Language       string               `bson:"language,omitempty"`
	Price          float64              `bson:"price"`
	AvailableDates []time.Time          `bson:"available_dates,omitempty"`
	TourGuide      primitive.ObjectID   `bson:"tour_guide"`
	Activities     []primitive.ObjectID `bson:"activities"`
	CreatedAt      time.Time            `bson:"created_at"`
}

type populatedItinerary struct {
	Doc          itineraryDoc        `bson:",inline"`
	TourGuideOf  []ownerDoc          `bson:"tour_guide_doc"`
	ActivityDocs []populatedActivity `bson:"activity_docs"`
}

func (p populatedItinerary) toDomain() *domain.Itinerary {
	d := p.Doc
	it := &domain.Itinerary{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Language:    d.Language,
		Price:       d.Price,
		TourGuideID: d.TourGuide.Hex(),
		ActivityIDs: hexes(d.Activities),
		Activities:  make([]domain.Activity, 0, len(p.ActivityDocs)),
		CreatedAt:   d.CreatedAt.UTC(),
	}
	for _, date := range d.AvailableDates {
		it.AvailableDates = append(it.AvailableDates, date.UTC())
	}
	if len(p.TourGuideOf) > 0 {
		it.TourGuide = p.TourGuideOf[0].toDomain()
	}
	for _, a := range p.ActivityDocs {
		it.Activities = append(it.Activities, *a.toDomain())
	}
	return it
}

func itineraryLookups() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from": collectionActivities, "localField": "activities", "foreignField": "_id", "as": "activity_docs",
			"pipeline": activityLookups(),
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from": collectionTourGuides, "localField": "tour_guide", "foreignField": "_id", "as": "tour_guide_doc",
			"pipeline": bson.A{bson.M{"$project": bson.M{"email": 1, "username": 1, "profile.name": 1}}},
		}}},
	}
}

func itineraryTextFilter(term string, ids []primitive.ObjectID) bson.M {
	re := containsRegex(term)
	or := bson.A{
		bson.M{"title": re},
		bson.M{"description": re},
	}
	if len(ids) > 0 {
		or = append(or, bson.M{"_id": bson.M{"$in": ids}})
	}
	return bson.M{"$or": or}
}

type ItineraryRepository struct {
	col *mongo.Collection
}

func NewItineraryRepository(db *mongo.Database) *ItineraryRepository {
	return &ItineraryRepository{col: db.Collection(collectionItineraries)}
}

func (r *ItineraryRepository) Create(ctx context.Context, it *domain.Itinerary) (*domain.Itinerary, error) {
	guide, err := objectID("tour_guide", it.TourGuideID)
	if err != nil {
		return nil, err
	}
	activities, err := objectIDs("activities", it.ActivityIDs)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := itineraryDoc{
		Title:          it.Title,
		Description:    it.Description,
		Language:       it.Language,
		Price:          it.Price,
		AvailableDates: it.AvailableDates,
		TourGuide:      guide,
		Activities:     activities,
		CreatedAt:      it.CreatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert itinerary: %w", err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)

	found, err := r.aggregate(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("insert itinerary: %w", domain.ErrNotFound)
	}
	return found[0], nil
}

func (r *ItineraryRepository) List(ctx context.Context) ([]*domain.Itinerary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.aggregate(ctx, nil)
}

func (r *ItineraryRepository) ScanRefs(ctx context.Context, fn func(domain.ItineraryRefs) error) error {
	ctx, cancel := context.WithTimeout(ctx, scanTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"activities": 1}))
	if err != nil {
		return fmt.Errorf("scan itineraries: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc itineraryDoc
		if err := cur.Decode(&doc); err != nil {
			return fmt.Errorf("scan itineraries: %w", err)
		}
		if err := fn(domain.ItineraryRefs{ID: doc.ID.Hex(), ActivityIDs: hexes(doc.Activities)}); err != nil {
			return err
		}
	}
	return cur.Err()
}

func (r *ItineraryRepository) FindMatching(ctx context.Context, m domain.TextMatch) ([]*domain.Itinerary, error) {
	ids, err := objectIDs("id", m.IDs)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.aggregate(ctx, itineraryTextFilter(m.Term, ids))
}

func (r *ItineraryRepository) FindByTourGuide(ctx context.Context, tourGuideID string) ([]*domain.Itinerary, error) {
	oid, err := objectID("tour_guide_id", tourGuideID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.aggregate(ctx, bson.M{"tour_guide": oid})
}

func (r *ItineraryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tour_guide", Value: 1}}},
		{Keys: bson.D{{Key: "activities", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ItineraryRepository) aggregate(ctx context.Context, match bson.M) ([]*domain.Itinerary, error) {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}})
	pipeline = append(pipeline, itineraryLookups()...)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate itineraries: %w", err)
	}
	var docs []populatedItinerary
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode itineraries: %w", err)
	}

	out := make([]*domain.Itinerary, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
