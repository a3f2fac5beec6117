package mongeasy

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/mongeasy/pkg/logger"
	mongoconn "github.com/dmitrymomot/mongeasy/pkg/mongo"
	"github.com/dmitrymomot/mongeasy/pkg/password"
)

// Mongeasy holds one MongoDB connection and a default collection, and
// exposes grouped single-call helpers over them.
//
// All methods are safe for concurrent use. Data operations wait for the
// connection before issuing their driver call; use the context to bound
// that wait.
type Mongeasy struct {
	Helpers HelperOps
	Insert  InsertOps
	Delete  DeleteOps
	Search  SearchOps

	conn              *connection
	defaultCollection string
	hasher            *password.Hasher
	logger            *slog.Logger
	strictFieldMatch  bool
	now               func() time.Time

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// connection resolves exactly once. Fields are written before ready is
// closed and only read after.
type connection struct {
	ready  chan struct{}
	db     database
	client *mongo.Client // nil when the database was injected
	err    error
}

// New creates an instance and starts connecting in the background. ctx
// bounds the connection attempt, not the instance lifetime.
//
// New itself only fails on invalid options. Connection failures surface
// from every subsequent operation as ErrConnection.
func New(ctx context.Context, cfg Config, opts ...Option) (*Mongeasy, error) {
	m, err := newMongeasy(cfg.Collection, cfg.BcryptCost, opts)
	if err != nil {
		return nil, err
	}

	go m.connect(ctx, cfg)

	return m, nil
}

// NewWithDatabase creates an instance over an already open database. The
// caller keeps ownership of the client; Close does not disconnect it.
func NewWithDatabase(db *mongo.Database, collection string, opts ...Option) (*Mongeasy, error) {
	if db == nil {
		return nil, errors.Join(ErrConnection, errors.New("nil database"))
	}
	return newWithStore(driverDatabase{db: db}, collection, opts...)
}

func newWithStore(db database, collection string, opts ...Option) (*Mongeasy, error) {
	m, err := newMongeasy(collection, 0, opts)
	if err != nil {
		return nil, err
	}
	m.conn.db = db
	close(m.conn.ready)
	return m, nil
}

func newMongeasy(collection string, cost int, opts []Option) (*Mongeasy, error) {
	o := options{
		logger:     logger.Discard(),
		bcryptCost: cost,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	hasher, err := password.NewHasher(o.bcryptCost)
	if err != nil {
		return nil, err
	}

	m := &Mongeasy{
		conn:              &connection{ready: make(chan struct{})},
		defaultCollection: collection,
		hasher:            hasher,
		logger:            o.logger.With(logger.Component("mongeasy")),
		strictFieldMatch:  o.strictFieldMatch,
		now:               o.now,
	}
	m.Helpers = HelperOps{m: m}
	m.Insert = InsertOps{m: m}
	m.Delete = DeleteOps{m: m}
	m.Search = SearchOps{m: m}

	return m, nil
}

func (m *Mongeasy) connect(ctx context.Context, cfg Config) {
	defer close(m.conn.ready)

	start := time.Now()
	client, db, err := mongoconn.Open(ctx, cfg.Mongo, cfg.Database)
	if err != nil {
		m.conn.err = errors.Join(ErrConnection, err)
		m.logger.ErrorContext(ctx, "mongo connection failed", logger.Error(err), logger.Duration(time.Since(start)))
		return
	}

	m.conn.client = client
	m.conn.db = driverDatabase{db: db}
	m.logger.InfoContext(ctx, "mongo connection established",
		logger.Database(db.Name()),
		logger.Duration(time.Since(start)),
	)
}

// Wait blocks until the connection is resolved and returns its error, if any.
func (m *Mongeasy) Wait(ctx context.Context) error {
	_, err := m.database(ctx)
	return err
}

// Ping checks that the server is reachable.
func (m *Mongeasy) Ping(ctx context.Context) error {
	db, err := m.database(ctx)
	if err != nil {
		return err
	}
	return db.Ping(ctx)
}

// DefaultCollection returns the collection used when a call passes "".
func (m *Mongeasy) DefaultCollection() string {
	return m.defaultCollection
}

// Close waits for the connection and disconnects it if this instance opened
// it. It is safe to call more than once; later data operations fail with
// ErrClosed.
func (m *Mongeasy) Close(ctx context.Context) error {
	m.closed.Store(true)

	select {
	case <-m.conn.ready:
	case <-ctx.Done():
		return ctx.Err()
	}

	m.closeOnce.Do(func() {
		if m.conn.client == nil {
			return
		}
		if err := m.conn.client.Disconnect(ctx); err != nil {
			m.closeErr = err
			m.logger.ErrorContext(ctx, "mongo disconnect failed", logger.Error(err))
			return
		}
		m.logger.InfoContext(ctx, "mongo connection closed")
	})
	return m.closeErr
}

// database waits for the connection to resolve.
func (m *Mongeasy) database(ctx context.Context) (database, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}
	select {
	case <-m.conn.ready:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if m.conn.err != nil {
		return nil, m.conn.err
	}
	return m.conn.db, nil
}

// collectionName resolves the target collection: name when non-empty,
// otherwise the instance default.
func (m *Mongeasy) collectionName(name string) (string, error) {
	if name != "" {
		return name, nil
	}
	if m.defaultCollection != "" {
		return m.defaultCollection, nil
	}
	return "", ErrMissingCollection
}

// collection resolves the collection name and waits for the connection.
func (m *Mongeasy) collection(ctx context.Context, name string) (collection, error) {
	resolved, err := m.collectionName(name)
	if err != nil {
		return nil, err
	}
	db, err := m.database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(resolved), nil
}
