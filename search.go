package mongeasy

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SearchOps groups read operations.
//
// Single-document lookups return a nil document when nothing matches;
// multi-document lookups return an empty slice.
type SearchOps struct {
	m *Mongeasy
}

// SearchByDocumentID finds the document whose _id is id. id is converted
// with Helpers.ConvertID and an unconvertible value fails with ErrInvalidID.
func (o SearchOps) SearchByDocumentID(ctx context.Context, collection string, id any) (bson.M, error) {
	oid, err := o.m.Helpers.ConvertID(id)
	if err != nil {
		return nil, err
	}
	return o.findOne(ctx, collection, bson.M{"_id": oid})
}

// SearchByValue finds the first document where field equals value.
func (o SearchOps) SearchByValue(ctx context.Context, collection, field string, value any) (bson.M, error) {
	return o.findOne(ctx, collection, bson.M{field: value})
}

// SearchByFieldValue finds every document where field equals value.
func (o SearchOps) SearchByFieldValue(ctx context.Context, collection, field string, value any) ([]bson.M, error) {
	return o.find(ctx, collection, bson.M{field: value})
}

// SearchDocumentsByField finds every document that has field (exists true)
// or lacks it (exists false).
func (o SearchOps) SearchDocumentsByField(ctx context.Context, collection, field string, exists bool) ([]bson.M, error) {
	return o.find(ctx, collection, existsFilter(field, exists))
}

// SearchDocumentByField is SearchDocumentsByField limited to the first match.
func (o SearchOps) SearchDocumentByField(ctx context.Context, collection, field string, exists bool) (bson.M, error) {
	return o.findOne(ctx, collection, existsFilter(field, exists))
}

func (o SearchOps) findOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	coll, err := o.m.collection(ctx, collection)
	if err != nil {
		return nil, err
	}
	return decodeOne(coll.FindOne(ctx, filter))
}

func (o SearchOps) find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	coll, err := o.m.collection(ctx, collection)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur)
}

func existsFilter(field string, exists bool) bson.M {
	return bson.M{field: bson.M{"$exists": exists}}
}
