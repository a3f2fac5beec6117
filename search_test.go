package mongeasy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestSearchByDocumentID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	oid := bson.NewObjectID()

	t.Run("found", func(t *testing.T) {
		m, db := newTestMongeasy(t, "users")
		db.one = bson.M{"_id": oid, "name": "a"}

		doc, err := m.Search.SearchByDocumentID(ctx, "", oid.Hex())
		require.NoError(t, err)
		assert.Equal(t, oid, doc["_id"])
		assert.Equal(t, call{op: "FindOne", collection: "users", filter: bson.M{"_id": oid}}, db.lastCall())
	})

	t.Run("not found", func(t *testing.T) {
		m, _ := newTestMongeasy(t, "users")
		doc, err := m.Search.SearchByDocumentID(ctx, "", oid)
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("invalid id never reaches the store", func(t *testing.T) {
		m, db := newTestMongeasy(t, "users")
		_, err := m.Search.SearchByDocumentID(ctx, "", "nope")
		require.ErrorIs(t, err, ErrInvalidID)
		assert.Zero(t, db.callCount())
	})
}

func TestSearchByValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m, db := newTestMongeasy(t, "users")
	db.one = bson.M{"name": "a"}

	doc, err := m.Search.SearchByValue(ctx, "", "name", "a")
	require.NoError(t, err)
	assert.Equal(t, "a", doc["name"])
	assert.Equal(t, bson.M{"name": "a"}, db.lastCall().filter)

	db.readErr = errors.New("timeout")
	_, err = m.Search.SearchByValue(ctx, "", "name", "a")
	assert.ErrorIs(t, err, db.readErr)
}

func TestSearchByFieldValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns all matches", func(t *testing.T) {
		m, db := newTestMongeasy(t, "users")
		db.many = []bson.M{{"role": "admin", "name": "a"}, {"role": "admin", "name": "b"}}

		docs, err := m.Search.SearchByFieldValue(ctx, "", "role", "admin")
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "a", docs[0]["name"])
		assert.Equal(t, "b", docs[1]["name"])
		assert.Equal(t, call{op: "Find", collection: "users", filter: bson.M{"role": "admin"}}, db.lastCall())
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		m, _ := newTestMongeasy(t, "users")
		docs, err := m.Search.SearchByFieldValue(ctx, "", "role", "ghost")
		require.NoError(t, err)
		require.NotNil(t, docs)
		assert.Empty(t, docs)
	})

	t.Run("read error", func(t *testing.T) {
		m, db := newTestMongeasy(t, "users")
		db.readErr = errors.New("timeout")
		docs, err := m.Search.SearchByFieldValue(ctx, "", "role", "admin")
		require.Error(t, err)
		assert.Nil(t, docs)
	})
}

func TestSearchByFieldExistence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for _, exists := range []bool{true, false} {
		m, db := newTestMongeasy(t, "users")

		docs, err := m.Search.SearchDocumentsByField(ctx, "", "deleted_at", exists)
		require.NoError(t, err)
		require.NotNil(t, docs)
		assert.Empty(t, docs)
		assert.Equal(t, bson.M{"deleted_at": bson.M{"$exists": exists}}, db.lastCall().filter)

		db.one = bson.M{"name": "a"}
		doc, err := m.Search.SearchDocumentByField(ctx, "", "deleted_at", exists)
		require.NoError(t, err)
		assert.Equal(t, "a", doc["name"])
		assert.Equal(t, call{op: "FindOne", collection: "users", filter: bson.M{"deleted_at": bson.M{"$exists": exists}}}, db.lastCall())
	}
}
