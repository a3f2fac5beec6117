package mongeasy

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"

	mongoconn "github.com/dmitrymomot/mongeasy/pkg/mongo"
)

// database is the subset of *mongo.Database the façade needs.
type database interface {
	Name() string
	Collection(name string) collection
	ListCollectionNames(ctx context.Context, filter any) ([]string, error)
	Ping(ctx context.Context) error // fails with pkg/mongo.ErrHealthcheckFailed
}

// collection is the subset of *mongo.Collection the façade needs. Every
// method maps to exactly one driver call.
type collection interface {
	InsertOne(ctx context.Context, document any) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter, update any) (*mongo.UpdateResult, error)
	UpdateMany(ctx context.Context, filter, update any) (*mongo.UpdateResult, error)
	FindOneAndDelete(ctx context.Context, filter any) *mongo.SingleResult
	FindOne(ctx context.Context, filter any) *mongo.SingleResult
	Find(ctx context.Context, filter any) (*mongo.Cursor, error)
	Drop(ctx context.Context) error
}

type driverDatabase struct {
	db *mongo.Database
}

func (d driverDatabase) Name() string { return d.db.Name() }

func (d driverDatabase) Collection(name string) collection {
	return driverCollection{coll: d.db.Collection(name)}
}

func (d driverDatabase) ListCollectionNames(ctx context.Context, filter any) ([]string, error) {
	return d.db.ListCollectionNames(ctx, filter)
}

func (d driverDatabase) Ping(ctx context.Context) error {
	return mongoconn.Healthcheck(d.db.Client())(ctx)
}

type driverCollection struct {
	coll *mongo.Collection
}

func (c driverCollection) InsertOne(ctx context.Context, document any) (*mongo.InsertOneResult, error) {
	return c.coll.InsertOne(ctx, document)
}

func (c driverCollection) UpdateOne(ctx context.Context, filter, update any) (*mongo.UpdateResult, error) {
	return c.coll.UpdateOne(ctx, filter, update)
}

func (c driverCollection) UpdateMany(ctx context.Context, filter, update any) (*mongo.UpdateResult, error) {
	return c.coll.UpdateMany(ctx, filter, update)
}

func (c driverCollection) FindOneAndDelete(ctx context.Context, filter any) *mongo.SingleResult {
	return c.coll.FindOneAndDelete(ctx, filter)
}

func (c driverCollection) FindOne(ctx context.Context, filter any) *mongo.SingleResult {
	return c.coll.FindOne(ctx, filter)
}

func (c driverCollection) Find(ctx context.Context, filter any) (*mongo.Cursor, error) {
	return c.coll.Find(ctx, filter)
}

func (c driverCollection) Drop(ctx context.Context) error {
	return c.coll.Drop(ctx)
}
