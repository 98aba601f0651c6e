package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/tripnest/tourism-platform/internal/core/domain"
)

func TestCredentialStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by identifier", func(mt *mtest.T) {
		store, err := NewCredentialStore(mt.DB, domain.RoleAdvertiser)
		require.NoError(mt, err)

		id := primitive.NewObjectID()
		created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tourism.advertisers", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "email", Value: "ads@x.com"},
			{Key: "password_hash", Value: "h"},
			{Key: "created_at", Value: created.Unix()},
		}))

		acc, err := store.FindByIdentifier(context.Background(), "ads@x.com")
		require.NoError(mt, err)
		require.Equal(mt, id.Hex(), acc.ID)
		require.Equal(mt, domain.RoleAdvertiser, acc.Role)
		require.Equal(mt, "ads@x.com", acc.Email)
		require.Equal(mt, created, acc.CreatedAt)
	})

	mt.Run("no documents is account not found", func(mt *mtest.T) {
		store, err := NewCredentialStore(mt.DB, domain.RoleAdmin)
		require.NoError(mt, err)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tourism.admins", mtest.FirstBatch))

		_, err = store.FindByIdentifier(context.Background(), "root")
		require.ErrorIs(mt, err, domain.ErrAccountNotFound)
	})

	mt.Run("command failure is not account not found", func(mt *mtest.T) {
		store, err := NewCredentialStore(mt.DB, domain.RoleSeller)
		require.NoError(mt, err)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 2, Name: "BadValue", Message: "boom",
		}))

		_, err = store.FindByIdentifier(context.Background(), "s@x.com")
		require.Error(mt, err)
		require.NotErrorIs(mt, err, domain.ErrAccountNotFound)
	})

	mt.Run("create assigns id", func(mt *mtest.T) {
		store, err := NewCredentialStore(mt.DB, domain.RoleTourist)
		require.NoError(mt, err)

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		acc, err := store.Create(context.Background(), &domain.Account{
			Role: domain.RoleTourist, Email: "t@x.com", PasswordHash: "h",
		})
		require.NoError(mt, err)
		require.NotEmpty(mt, acc.ID)
		require.Equal(mt, domain.RoleTourist, acc.Role)
	})

	mt.Run("duplicate key is account exists", func(mt *mtest.T) {
		store, err := NewCredentialStore(mt.DB, domain.RoleTourist)
		require.NoError(mt, err)

		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))

		_, err = store.Create(context.Background(), &domain.Account{
			Role: domain.RoleTourist, Email: "t@x.com", PasswordHash: "h",
		})
		require.ErrorIs(mt, err, domain.ErrAccountExists)
	})
}

func TestNewCredentialStore_UnknownRole(t *testing.T) {
	_, err := NewCredentialStore(nil, domain.Role("pirate"))
	require.ErrorIs(t, err, domain.ErrInvalidRole)
}
