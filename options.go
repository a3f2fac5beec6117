package mongeasy

import (
	"log/slog"
	"time"
)

// Option configures a Mongeasy instance.
type Option func(*options)

type options struct {
	logger           *slog.Logger
	bcryptCost       int
	strictFieldMatch bool
	now              func() time.Time
}

// WithLogger sets the logger. Records are discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBcryptCost overrides Config.BcryptCost.
func WithBcryptCost(cost int) Option {
	return func(o *options) {
		o.bcryptCost = cost
	}
}

// WithStrictFieldValueMatch makes Delete.DeleteFieldByValue unset the field
// only on documents where it equals the given value. Without it the field
// is removed from every document in the collection.
func WithStrictFieldValueMatch() Option {
	return func(o *options) {
		o.strictFieldMatch = true
	}
}

// WithClock overrides the time source used for token expiration.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
