package mongeasy

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// InsertOps groups operations that add or modify documents.
//
// Every method takes the target collection first; "" selects the default.
type InsertOps struct {
	m *Mongeasy
}

// InsertOne inserts document. The server assigns an _id when none is present.
func (o InsertOps) InsertOne(ctx context.Context, collection string, document any) (*mongo.InsertOneResult, error) {
	coll, err := o.m.collection(ctx, collection)
	if err != nil {
		return nil, err
	}
	res, err := coll.InsertOne(ctx, document)
	if err != nil {
		return nil, writeError(err)
	}
	return res, nil
}

// UpdateFieldValue applies update to the first document matching filter.
// Matching nothing is not an error.
func (o InsertOps) UpdateFieldValue(ctx context.Context, collection string, filter, update any) (*mongo.UpdateResult, error) {
	coll, err := o.m.collection(ctx, collection)
	if err != nil {
		return nil, err
	}
	res, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, writeError(err)
	}
	return res, nil
}

// UpdateMultipleFields applies update to every document matching filter.
func (o InsertOps) UpdateMultipleFields(ctx context.Context, collection string, filter, update any) (*mongo.UpdateResult, error) {
	coll, err := o.m.collection(ctx, collection)
	if err != nil {
		return nil, err
	}
	res, err := coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return nil, writeError(err)
	}
	return res, nil
}

// AddToField appends to array fields of the first document matching filter.
// update maps field names to the values to push, e.g. bson.M{"tags": "new"}.
// Pushing onto a field that holds a non-array value fails with ErrTypeMismatch.
func (o InsertOps) AddToField(ctx context.Context, collection string, filter, update any) (*mongo.UpdateResult, error) {
	coll, err := o.m.collection(ctx, collection)
	if err != nil {
		return nil, err
	}
	res, err := coll.UpdateOne(ctx, filter, bson.M{"$push": update})
	if err != nil {
		return nil, pushError(err)
	}
	return res, nil
}
