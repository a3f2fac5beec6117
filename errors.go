package mongeasy

import "errors"

var (
	// ErrConnection is returned by every operation when the connection could
	// not be opened. The opener's error is joined to it.
	ErrConnection = errors.New("mongeasy: connection failed")

	// ErrInvalidID is returned when a value cannot be converted to an ObjectID.
	ErrInvalidID = errors.New("mongeasy: invalid object id")

	// ErrWrite wraps driver errors from insert, update and delete operations.
	ErrWrite = errors.New("mongeasy: write failed")

	// ErrNotFound is returned when DeleteCollection targets a missing collection.
	ErrNotFound = errors.New("mongeasy: collection not found")

	// ErrTypeMismatch is returned when AddToField pushes onto a non-array field.
	ErrTypeMismatch = errors.New("mongeasy: target field is not an array")

	// ErrSigning is returned when a token cannot be signed.
	ErrSigning = errors.New("mongeasy: token signing failed")

	// ErrHash is returned when a value cannot be hashed.
	ErrHash = errors.New("mongeasy: hashing failed")

	// ErrMissingCollection is returned when neither the call nor the instance names a collection.
	ErrMissingCollection = errors.New("mongeasy: no collection given and no default configured")

	// ErrClosed is returned by operations issued after Close.
	ErrClosed = errors.New("mongeasy: closed")
)
