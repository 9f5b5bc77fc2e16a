package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
)

const accountsNS = "studio.accounts"

func duplicateKey(index string) bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   0,
		Code:    11000,
		Message: "E11000 duplicate key error collection: " + accountsNS + " index: " + index + " dup key",
	})
}

func TestAccountRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("count", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, accountsNS, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(2)}}))

		n, err := repo.Count(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), n)
	})

	mt.Run("bootstrap insert assigns id", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		created, err := repo.CreateBootstrap(ctx, &domain.Account{
			Email: "root@studio.com", PasswordHash: "hash", Role: domain.RoleSuperAdmin,
		})
		require.NoError(mt, err)
		assert.Len(mt, created.ID, 24)
		assert.Equal(mt, domain.RoleSuperAdmin, created.Role)
	})

	mt.Run("second super-admin is rejected", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB)
		mt.AddMockResponses(duplicateKey(indexSingleSuperAdmin))

		_, err := repo.CreateBootstrap(ctx, &domain.Account{Email: "b@studio.com", Role: domain.RoleSuperAdmin})
		assert.ErrorIs(mt, err, domain.ErrBootstrapClosed)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB)
		mt.AddMockResponses(duplicateKey(indexUniqueEmail))

		_, err := repo.Create(ctx, &domain.Account{Email: "a@studio.com", Role: domain.RoleAdmin})
		assert.ErrorIs(mt, err, domain.ErrEmailTaken)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB)
		oid := primitive.NewObjectID()
		changed := time.Date(2026, 3, 1, 9, 0, 0, 123_000_000, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, accountsNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "email", Value: "a@studio.com"},
			{Key: "password_hash", Value: "hash"},
			{Key: "role", Value: "admin"},
			{Key: "password_changed_at", Value: changed.UnixMilli()},
			{Key: "created_at", Value: changed.UnixMilli()},
			{Key: "updated_at", Value: changed.UnixMilli()},
		}))

		a, err := repo.FindByEmail(ctx, "a@studio.com")
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), a.ID)
		assert.Equal(mt, domain.RoleAdmin, a.Role)
		require.NotNil(mt, a.PasswordChangedAt)
		assert.True(mt, a.PasswordChangedAt.Equal(changed))
	})

	mt.Run("find by email missing", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, accountsNS, mtest.FirstBatch))

		_, err := repo.FindByEmail(ctx, "nobody@studio.com")
		assert.ErrorIs(mt, err, domain.ErrAccountNotFound)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB)

		_, err := repo.FindByID(ctx, "not-an-object-id")
		assert.ErrorIs(mt, err, domain.ErrAccountNotFound)
		assert.ErrorIs(mt, repo.Delete(ctx, "nope"), domain.ErrAccountNotFound)
	})

	mt.Run("update missing account", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		_, err := repo.Update(ctx, &domain.Account{ID: primitive.NewObjectID().Hex(), Email: "a@studio.com"})
		assert.ErrorIs(mt, err, domain.ErrAccountNotFound)
	})

	mt.Run("update email collision", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB)
		mt.AddMockResponses(duplicateKey(indexUniqueEmail))

		_, err := repo.Update(ctx, &domain.Account{ID: primitive.NewObjectID().Hex(), Email: "taken@studio.com"})
		assert.ErrorIs(mt, err, domain.ErrEmailTaken)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		id := primitive.NewObjectID().Hex()
		require.NoError(mt, repo.Delete(ctx, id))
		assert.ErrorIs(mt, repo.Delete(ctx, id), domain.ErrAccountNotFound)
	})
}

func TestMillisRoundTrip(t *testing.T) {
	assert.Equal(t, int64(0), timeToMillis(time.Time{}))
	assert.True(t, millisToTime(0).IsZero())

	ts := time.Date(2026, 3, 1, 9, 0, 0, 250_000_000, time.UTC)
	assert.True(t, millisToTime(timeToMillis(ts)).Equal(ts))
}
