package mongeasy

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Server error codes reported when $push targets a non-array field.
const (
	codeBadValue      = 2
	codeTypeMismatch  = 14
	codeLegacyNoArray = 16837
)

// decodeOne decodes a single result, mapping "no documents" to a nil document.
func decodeOne(res *mongo.SingleResult) (bson.M, error) {
	var doc bson.M
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// decodeAll drains cur into a non-nil slice.
func decodeAll(ctx context.Context, cur *mongo.Cursor) ([]bson.M, error) {
	docs := make([]bson.M, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, nil
}

// writeError wraps a failed mutation.
func writeError(err error) error {
	return errors.Join(ErrWrite, err)
}

// pushError wraps a failed $push, telling a non-array target apart from
// other write failures.
func pushError(err error) error {
	if isArrayTypeMismatch(err) {
		return errors.Join(ErrTypeMismatch, err)
	}
	return writeError(err)
}

func isArrayTypeMismatch(err error) bool {
	var we mongo.WriteException
	if !errors.As(err, &we) {
		return false
	}
	for _, e := range we.WriteErrors {
		switch e.Code {
		case codeTypeMismatch, codeLegacyNoArray:
			return true
		case codeBadValue:
			if strings.Contains(e.Message, "must be an array") {
				return true
			}
		}
	}
	return false
}
