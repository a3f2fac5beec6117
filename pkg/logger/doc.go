// Package logger builds log/slog loggers from functional options and offers
// attribute helpers with consistent key names.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs ContextExtractor callbacks on every
// record so request-scoped values travel with the context instead of the
// logger.
//
// # Usage
//
//	log := logger.New(
//		logger.WithDevelopment("billing"),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//
//	db, err := mongeasy.New(ctx, cfg, mongeasy.WithLogger(log))
//
// Error returns an empty attribute for a nil error, so
//
//	log.Info("collection dropped", logger.Error(err))
//
// needs no nil check.
package logger
