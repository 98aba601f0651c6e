package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tripnest/tourism-platform/internal/core/domain"
)

var roleCollections = map[domain.Role]string{
	domain.RoleTourist:         collectionTourists,
	domain.RoleTourGuide:       collectionTourGuides,
	domain.RoleAdvertiser:      collectionAdvertisers,
	domain.RoleSeller:          collectionSellers,
	domain.RoleAdmin:           collectionAdmins,
	domain.RoleTourismGovernor: collectionTourismGovernors,
}

// CredentialStore is the collection of one role's login records, keyed on
// that role's identifier field.
type CredentialStore struct {
	role  domain.Role
	field string
	coll  *mongo.Collection
}

func NewCredentialStore(db *mongo.Database, role domain.Role) (*CredentialStore, error) {
	name, ok := roleCollections[role]
	if !ok {
		return nil, fmt.Errorf("credential store %q: %w", role, domain.ErrInvalidRole)
	}
	return &CredentialStore{
		role:  role,
		field: string(role.Identifier()),
		coll:  db.Collection(name),
	}, nil
}

type mongoAccount struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email,omitempty"`
	Username     string             `bson:"username,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	Profile      domain.Profile     `bson:"profile"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (s *CredentialStore) Role() domain.Role {
	return s.role
}

func (s *CredentialStore) FindByIdentifier(ctx context.Context, identifier string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoAccount
	if err := s.coll.FindOne(ctx, bson.M{s.field: identifier}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find %s: %w", s.role, err)
	}
	return s.toDomain(doc), nil
}

func (s *CredentialStore) Create(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAccount{
		Email:        acc.Email,
		Username:     acc.Username,
		PasswordHash: acc.PasswordHash,
		Profile:      acc.Profile,
		CreatedAt:    acc.CreatedAt.Unix(),
		UpdatedAt:    acc.UpdatedAt.Unix(),
	}

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert %s: %w", s.role, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return s.toDomain(doc), nil
}

// EnsureIndexes makes the identifier field unique within the collection.
func (s *CredentialStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: s.field, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("index %s.%s: %w", s.coll.Name(), s.field, err)
	}
	return nil
}

func (s *CredentialStore) toDomain(doc mongoAccount) *domain.Account {
	return &domain.Account{
		ID:           doc.ID.Hex(),
		Role:         s.role,
		Email:        doc.Email,
		Username:     doc.Username,
		PasswordHash: doc.PasswordHash,
		Profile:      doc.Profile,
		CreatedAt:    unixToTime(doc.CreatedAt),
		UpdatedAt:    unixToTime(doc.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
