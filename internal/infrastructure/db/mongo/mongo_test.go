package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tripnest/tourism-platform/internal/core/domain"
)

func TestContainsRegex_EscapesMetacharacters(t *testing.T) {
	re := containsRegex("a.b*(c)")
	require.Equal(t, `a\.b\*\(c\)`, re.Pattern)
	require.Equal(t, "i", re.Options)
}

func TestObjectIDs_InvalidHexIsValidationError(t *testing.T) {
	_, err := objectIDs("tags", []string{primitive.NewObjectID().Hex(), "nope"})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "tags", ve.Field)
}

func TestHexes_RoundTrip(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	got := hexes([]primitive.ObjectID{a, b})
	require.Equal(t, []string{a.Hex(), b.Hex()}, got)
	require.Nil(t, hexes(nil))

	back, err := objectIDs("id", got)
	require.NoError(t, err)
	require.Equal(t, []primitive.ObjectID{a, b}, back)
}

func TestActivityTextFilter(t *testing.T) {
	id := primitive.NewObjectID()

	withIDs := activityTextFilter("sea", []primitive.ObjectID{id})
	or, ok := withIDs["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)
	require.Equal(t, bson.M{"_id": bson.M{"$in": []primitive.ObjectID{id}}}, or[2])

	textOnly := activityTextFilter("sea", nil)
	require.Len(t, textOnly["$or"].(bson.A), 2, "no id clause without reference matches")
}

func TestItineraryTextFilter(t *testing.T) {
	f := itineraryTextFilter("nile", nil)
	or := f["$or"].(bson.A)
	require.Equal(t, bson.M{"title": containsRegex("nile")}, or[0])
	require.Equal(t, bson.M{"description": containsRegex("nile")}, or[1])
}

func TestPopulatedActivity_ToDomain(t *testing.T) {
	adv, tag := primitive.NewObjectID(), primitive.NewObjectID()
	owner := ownerDoc{ID: adv, Email: "ads@x.com"}
	owner.Profile.Name = "Blue Ads"

	doc := populatedActivity{
		Doc: activityDoc{
			ID:         primitive.NewObjectID(),
			Name:       "Red Sea Trip",
			Date:       time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			Advertiser: adv,
			Tags:       []primitive.ObjectID{tag},
		},
		AdvertiserOf: []ownerDoc{owner},
		TagDocs:      []tagDoc{{ID: tag, Type: "Diving"}},
	}

	a := doc.toDomain()
	require.Equal(t, adv.Hex(), a.AdvertiserID)
	require.Equal(t, "Blue Ads", a.Advertiser.Name)
	require.Equal(t, []string{tag.Hex()}, a.TagIDs)
	require.Equal(t, []domain.Tag{{ID: tag.Hex(), Type: "Diving"}}, a.Tags)
	require.NotNil(t, a.Categories)
	require.Empty(t, a.Categories)
}

func TestPopulatedItinerary_ToDomain_MissingGuide(t *testing.T) {
	doc := populatedItinerary{Doc: itineraryDoc{ID: primitive.NewObjectID(), Title: "3-Day Package"}}

	it := doc.toDomain()
	require.Nil(t, it.TourGuide)
	require.NotNil(t, it.Activities)
}
