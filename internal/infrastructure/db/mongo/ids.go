package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tripnest/tourism-platform/internal/core/domain"
)

func objectID(field, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.NewValidationError(field, "must be a valid id")
	}
	return oid, nil
}

func objectIDs(field string, ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := objectID(field, id)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}

func hexes(oids []primitive.ObjectID) []string {
	if len(oids) == 0 {
		return nil
	}
	out := make([]string, len(oids))
	for i, oid := range oids {
		out[i] = oid.Hex()
	}
	return out
}

// containsRegex matches term anywhere in a field, case-insensitively. Regex
// metacharacters in term are matched literally.
func containsRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}
