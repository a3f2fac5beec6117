package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Operation records the façade operation name under the key "operation".
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// Collection records the target collection under the key "collection".
func Collection(name string) slog.Attr {
	return slog.String("collection", name)
}

// Database records the database name under the key "database".
func Database(name string) slog.Attr {
	return slog.String("database", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
