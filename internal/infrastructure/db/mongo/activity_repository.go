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

type activityDoc struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty"`
	Name             string               `bson:"name"`
	Location         string               `bson:"location"`
	Date             time.Time            `bson:"date"`
	Price            float64              `bson:"price"`
	SpecialDiscounts string               `bson:"special_discounts,omitempty"`
	BookingOpen      bool                 `bson:"booking_open"`
	Advertiser       primitive.ObjectID   `bson:"advertiser"`
	Tags             []primitive.ObjectID `bson:"tags"`
	Categories       []primitive.ObjectID `bson:"categories"`
	CreatedAt        time.Time            `bson:"created_at"`
}

// populatedActivity is an activity document after the lookup stages.
type populatedActivity struct {
	Doc          activityDoc   `bson:",inline"`
	AdvertiserOf []ownerDoc    `bson:"advertiser_doc"`
	TagDocs      []tagDoc      `bson:"tag_docs"`
	CategoryDocs []categoryDoc `bson:"category_docs"`
}

// ownerDoc is the subset of an account document shown on catalog entries.
type ownerDoc struct {
	ID       primitive.ObjectID `bson:"_id"`
	Email    string             `bson:"email,omitempty"`
	Username string             `bson:"username,omitempty"`
	Profile  struct {
		Name string `bson:"name,omitempty"`
	} `bson:"profile"`
}

func (d ownerDoc) toDomain() *domain.Owner {
	return &domain.Owner{ID: d.ID.Hex(), Email: d.Email, Username: d.Username, Name: d.Profile.Name}
}

func (p populatedActivity) toDomain() *domain.Activity {
	d := p.Doc
	a := &domain.Activity{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		Location:         d.Location,
		Date:             d.Date.UTC(),
		Price:            d.Price,
		SpecialDiscounts: d.SpecialDiscounts,
		BookingOpen:      d.BookingOpen,
		AdvertiserID:     d.Advertiser.Hex(),
		TagIDs:           hexes(d.Tags),
		CategoryIDs:      hexes(d.Categories),
		Tags:             make([]domain.Tag, 0, len(p.TagDocs)),
		Categories:       make([]domain.Category, 0, len(p.CategoryDocs)),
		CreatedAt:        d.CreatedAt.UTC(),
	}
	if len(p.AdvertiserOf) > 0 {
		a.Advertiser = p.AdvertiserOf[0].toDomain()
	}
	for _, t := range p.TagDocs {
		a.Tags = append(a.Tags, t.toDomain())
	}
	for _, c := range p.CategoryDocs {
		a.Categories = append(a.Categories, c.toDomain())
	}
	return a
}

// activityLookups populates tags, categories and the advertiser.
func activityLookups() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from": collectionTags, "localField": "tags", "foreignField": "_id", "as": "tag_docs",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from": collectionCategories, "localField": "categories", "foreignField": "_id", "as": "category_docs",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from": collectionAdvertisers, "localField": "advertiser", "foreignField": "_id", "as": "advertiser_doc",
			"pipeline": bson.A{bson.M{"$project": bson.M{"email": 1, "username": 1, "profile.name": 1}}},
		}}},
	}
}

// activityTextFilter is the single OR-query behind a relevance search.
func activityTextFilter(term string, ids []primitive.ObjectID) bson.M {
	re := containsRegex(term)
	or := bson.A{
		bson.M{"name": re},
		bson.M{"location": re},
	}
	if len(ids) > 0 {
		or = append(or, bson.M{"_id": bson.M{"$in": ids}})
	}
	return bson.M{"$or": or}
}

type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivities)}
}

func (r *ActivityRepository) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	advertiser, err := objectID("advertiser", a.AdvertiserID)
	if err != nil {
		return nil, err
	}
	tags, err := objectIDs("tags", a.TagIDs)
	if err != nil {
		return nil, err
	}
	categories, err := objectIDs("categories", a.CategoryIDs)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := activityDoc{
		Name:             a.Name,
		Location:         a.Location,
		Date:             a.Date,
		Price:            a.Price,
		SpecialDiscounts: a.SpecialDiscounts,
		BookingOpen:      a.BookingOpen,
		Advertiser:       advertiser,
		Tags:             tags,
		Categories:       categories,
		CreatedAt:        a.CreatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)

	found, err := r.aggregate(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("insert activity: %w", domain.ErrNotFound)
	}
	return found[0], nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.aggregate(ctx, nil)
}

func (r *ActivityRepository) ScanRefs(ctx context.Context, fn func(domain.ActivityRefs) error) error {
	ctx, cancel := context.WithTimeout(ctx, scanTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"tags": 1, "categories": 1}))
	if err != nil {
		return fmt.Errorf("scan activities: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc activityDoc
		if err := cur.Decode(&doc); err != nil {
			return fmt.Errorf("scan activities: %w", err)
		}
		ref := domain.ActivityRefs{ID: doc.ID.Hex(), TagIDs: hexes(doc.Tags), CategoryIDs: hexes(doc.Categories)}
		if err := fn(ref); err != nil {
			return err
		}
	}
	return cur.Err()
}

func (r *ActivityRepository) FindMatching(ctx context.Context, m domain.TextMatch) ([]*domain.Activity, error) {
	ids, err := objectIDs("id", m.IDs)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.aggregate(ctx, activityTextFilter(m.Term, ids))
}

func (r *ActivityRepository) FindByAdvertiser(ctx context.Context, advertiserID string) ([]*domain.Activity, error) {
	oid, err := objectID("advertiser_id", advertiserID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.aggregate(ctx, bson.M{"advertiser": oid})
}

func (r *ActivityRepository) CountByIDs(ctx context.Context, ids []string) (int, error) {
	oids, err := objectIDs("activities", ids)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}
	return int(n), nil
}

func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "advertiser", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "categories", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// aggregate runs the populate pipeline, optionally preceded by a $match.
func (r *ActivityRepository) aggregate(ctx context.Context, match bson.M) ([]*domain.Activity, error) {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}})
	pipeline = append(pipeline, activityLookups()...)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate activities: %w", err)
	}
	var docs []populatedActivity
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}

	out := make([]*domain.Activity, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
