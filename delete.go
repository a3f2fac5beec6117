package mongeasy

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/mongeasy/pkg/logger"
)

// DeleteOps groups operations that remove documents, fields or collections.
type DeleteOps struct {
	m *Mongeasy
}

// DeleteByID removes the document whose _id equals id and returns it, or
// nil if none matched. Hex strings that form a valid ObjectID are converted
// first; any other id is matched as given.
func (o DeleteOps) DeleteByID(ctx context.Context, collection string, id any) (bson.M, error) {
	if s, ok := id.(string); ok {
		if oid, err := bson.ObjectIDFromHex(s); err == nil {
			id = oid
		}
	}
	return o.findOneAndDelete(ctx, collection, bson.M{"_id": id})
}

// DeleteByField removes the first document where field equals value and
// returns it, or nil if none matched.
func (o DeleteOps) DeleteByField(ctx context.Context, collection, field string, value any) (bson.M, error) {
	return o.findOneAndDelete(ctx, collection, bson.M{field: value})
}

func (o DeleteOps) findOneAndDelete(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	coll, err := o.m.collection(ctx, collection)
	if err != nil {
		return nil, err
	}
	doc, err := decodeOne(coll.FindOneAndDelete(ctx, filter))
	if err != nil {
		return nil, writeError(err)
	}
	return doc, nil
}

// DeleteCollection drops the collection with all its documents and indexes.
// It fails with ErrNotFound when the collection does not exist.
func (o DeleteOps) DeleteCollection(ctx context.Context, collection string) (bool, error) {
	name, err := o.m.collectionName(collection)
	if err != nil {
		return false, err
	}
	db, err := o.m.database(ctx)
	if err != nil {
		return false, err
	}

	names, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return false, err
	}
	if len(names) == 0 {
		return false, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if err := db.Collection(name).Drop(ctx); err != nil {
		return false, writeError(err)
	}

	o.m.logger.InfoContext(ctx, "collection dropped",
		logger.Operation("DeleteCollection"),
		logger.Collection(name),
		logger.Database(db.Name()),
	)
	return true, nil
}

// DeleteFieldByValue removes field from documents in the collection.
//
// By default the field is unset on every document, whatever it holds; value
// takes no part in matching. With WithStrictFieldValueMatch only documents
// where field equals value are touched.
func (o DeleteOps) DeleteFieldByValue(ctx context.Context, collection, field string, value any) (*mongo.UpdateResult, error) {
	coll, err := o.m.collection(ctx, collection)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if o.m.strictFieldMatch {
		filter = bson.M{field: value}
	}

	res, err := coll.UpdateMany(ctx, filter, bson.M{"$unset": bson.M{field: ""}})
	if err != nil {
		return nil, writeError(err)
	}
	return res, nil
}
