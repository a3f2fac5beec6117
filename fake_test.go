package mongeasy

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	mongoconn "github.com/dmitrymomot/mongeasy/pkg/mongo"
)

// call records one driver-level operation issued through the fake.
type call struct {
	op         string
	collection string
	filter     any
	update     any
	document   any
}

// fakeDatabase records calls and serves canned results.
type fakeDatabase struct {
	mu sync.Mutex

	calls []call

	existing []string // collection names reported by ListCollectionNames
	one      bson.M   // FindOne/FindOneAndDelete result; nil means no document
	many     []bson.M // Find result
	writeErr error    // returned by every mutation
	readErr  error    // returned by Find/FindOne
	pingErr  error
}

func newFakeDatabase() *fakeDatabase {
	return &fakeDatabase{}
}

func (d *fakeDatabase) record(c call) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, c)
}

func (d *fakeDatabase) lastCall() call {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.calls) == 0 {
		return call{}
	}
	return d.calls[len(d.calls)-1]
}

func (d *fakeDatabase) callCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.calls)
}

func (d *fakeDatabase) Name() string { return "fake" }

func (d *fakeDatabase) Collection(name string) collection {
	return &fakeCollection{db: d, name: name}
}

func (d *fakeDatabase) ListCollectionNames(ctx context.Context, filter any) ([]string, error) {
	d.record(call{op: "ListCollectionNames", filter: filter})
	want := ""
	if f, ok := filter.(bson.D); ok && len(f) > 0 {
		want, _ = f[0].Value.(string)
	}
	var names []string
	for _, n := range d.existing {
		if want == "" || n == want {
			names = append(names, n)
		}
	}
	return names, nil
}

func (d *fakeDatabase) Ping(ctx context.Context) error {
	if d.pingErr != nil {
		return errors.Join(mongoconn.ErrHealthcheckFailed, d.pingErr)
	}
	return nil
}

type fakeCollection struct {
	db   *fakeDatabase
	name string
}

func (c *fakeCollection) InsertOne(ctx context.Context, document any) (*mongo.InsertOneResult, error) {
	c.db.record(call{op: "InsertOne", collection: c.name, document: document})
	if c.db.writeErr != nil {
		return nil, c.db.writeErr
	}
	return &mongo.InsertOneResult{InsertedID: bson.NewObjectID(), Acknowledged: true}, nil
}

func (c *fakeCollection) UpdateOne(ctx context.Context, filter, update any) (*mongo.UpdateResult, error) {
	c.db.record(call{op: "UpdateOne", collection: c.name, filter: filter, update: update})
	if c.db.writeErr != nil {
		return nil, c.db.writeErr
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1, Acknowledged: true}, nil
}

func (c *fakeCollection) UpdateMany(ctx context.Context, filter, update any) (*mongo.UpdateResult, error) {
	c.db.record(call{op: "UpdateMany", collection: c.name, filter: filter, update: update})
	if c.db.writeErr != nil {
		return nil, c.db.writeErr
	}
	return &mongo.UpdateResult{MatchedCount: 2, ModifiedCount: 2, Acknowledged: true}, nil
}

func (c *fakeCollection) FindOneAndDelete(ctx context.Context, filter any) *mongo.SingleResult {
	c.db.record(call{op: "FindOneAndDelete", collection: c.name, filter: filter})
	return c.single(c.db.writeErr)
}

func (c *fakeCollection) FindOne(ctx context.Context, filter any) *mongo.SingleResult {
	c.db.record(call{op: "FindOne", collection: c.name, filter: filter})
	return c.single(c.db.readErr)
}

func (c *fakeCollection) single(err error) *mongo.SingleResult {
	if err != nil {
		return mongo.NewSingleResultFromDocument(bson.M{}, err, bson.NewRegistry())
	}
	if c.db.one == nil {
		return mongo.NewSingleResultFromDocument(bson.M{}, mongo.ErrNoDocuments, bson.NewRegistry())
	}
	return mongo.NewSingleResultFromDocument(c.db.one, nil, bson.NewRegistry())
}

func (c *fakeCollection) Find(ctx context.Context, filter any) (*mongo.Cursor, error) {
	c.db.record(call{op: "Find", collection: c.name, filter: filter})
	if c.db.readErr != nil {
		return nil, c.db.readErr
	}
	docs := make([]any, 0, len(c.db.many))
	for _, d := range c.db.many {
		docs = append(docs, d)
	}
	return mongo.NewCursorFromDocuments(docs, nil, bson.NewRegistry())
}

func (c *fakeCollection) Drop(ctx context.Context) error {
	c.db.record(call{op: "Drop", collection: c.name})
	return c.db.writeErr
}
