// Package mongo opens MongoDB connections from environment-driven
// configuration.
//
// New validates the connection URL, connects, and pings the primary,
// retrying transient failures a configurable number of times. Open does the
// same and also selects a database, taking the name from the URL path when
// none is given. Healthcheck wraps a ping for readiness probes.
//
// # Usage
//
//	cfg := mongo.DefaultConfig("mongodb://localhost:27017/app")
//
//	client, db, err := mongo.Open(ctx, cfg, "")
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(context.Background())
//
//	users := db.Collection("users")
//
// # Configuration
//
// Config carries env tags so it can be filled by pkg/config. The legacy
// UseNewURLParser and UseUnifiedTopology flags are accepted for
// compatibility with older deployments and have no effect.
//
// # Error Handling
//
// Failures are joined with a package sentinel, so errors.Is works for both
// the sentinel and the underlying driver error:
//
//	if errors.Is(err, mongo.ErrInvalidConnectionURL) { ... }
//	if errors.Is(err, mongo.ErrFailedToConnectToMongo) { ... }
package mongo
