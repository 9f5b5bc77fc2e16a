package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

const categoriesNS = "studio.categories"

func TestDocumentRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("insert fetches the stored document", func(mt *mtest.T) {
		repo := NewDocumentRepository[domain.Category](mt.DB, CategoriesCollection)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(1, categoriesNS, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: oid},
				{Key: "name", Value: "Office"},
			}),
		)

		c, err := repo.Insert(ctx, &domain.Category{Name: "Office"})
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), c.ID)
		assert.Equal(mt, "Office", c.Name)
	})

	mt.Run("insert duplicate", func(mt *mtest.T) {
		repo := NewDocumentRepository[domain.Category](mt.DB, CategoriesCollection)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error index: uniq_name",
		}))

		_, err := repo.Insert(ctx, &domain.Category{Name: "Office"})
		assert.ErrorIs(mt, err, domain.ErrDuplicateDocument)
	})

	mt.Run("find", func(mt *mtest.T) {
		repo := NewDocumentRepository[domain.Category](mt.DB, CategoriesCollection)
		first := mtest.CreateCursorResponse(1, categoriesNS, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Hospitality"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Office"}},
		)
		done := mtest.CreateCursorResponse(0, categoriesNS, mtest.NextBatch)
		mt.AddMockResponses(first, done)

		cats, err := repo.Find(ctx, ports.DocumentQuery{Sort: []ports.SortField{{Field: "name"}}})
		require.NoError(mt, err)
		require.Len(mt, cats, 2)
		assert.Equal(mt, "Hospitality", cats[0].Name)
	})

	mt.Run("find nothing", func(mt *mtest.T) {
		repo := NewDocumentRepository[domain.Category](mt.DB, CategoriesCollection)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, categoriesNS, mtest.FirstBatch))

		cats, err := repo.Find(ctx, ports.DocumentQuery{})
		require.NoError(mt, err)
		assert.NotNil(mt, cats)
		assert.Empty(mt, cats)
	})

	mt.Run("replace missing document", func(mt *mtest.T) {
		repo := NewDocumentRepository[domain.Category](mt.DB, CategoriesCollection)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.Replace(ctx, primitive.NewObjectID().Hex(), &domain.Category{Name: "x"}, false)
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("malformed ids", func(mt *mtest.T) {
		repo := NewDocumentRepository[domain.Category](mt.DB, CategoriesCollection)

		_, err := repo.FindByID(ctx, "undefined")
		assert.ErrorIs(mt, err, domain.ErrNotFound)
		_, err = repo.Replace(ctx, "undefined", &domain.Category{Name: "x"}, false)
		assert.ErrorIs(mt, err, domain.ErrNotFound)
		assert.ErrorIs(mt, repo.Delete(ctx, "undefined"), domain.ErrNotFound)
	})

	mt.Run("exists", func(mt *mtest.T) {
		repo := NewDocumentRepository[domain.Category](mt.DB, CategoriesCollection)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, categoriesNS, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}))

		ok, err := repo.Exists(ctx, map[string]any{"name": "Office"}, primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.True(mt, ok)
	})
}

func TestToFields(t *testing.T) {
	fields, err := toFields(&domain.PortfolioItem{ID: "abc", Title: "Loft", IsActive: true})
	require.NoError(t, err)

	assert.NotContains(t, fields, "_id")
	assert.Equal(t, "Loft", fields["title"])
	assert.Equal(t, true, fields["is_active"])
	assert.Contains(t, fields, "created_at")
}
