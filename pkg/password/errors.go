package password

import "errors"

var (
	ErrInvalidCost  = errors.New("password: bcrypt cost out of range")
	ErrValueTooLong = errors.New("password: value exceeds 72 bytes")
	ErrHashFailed   = errors.New("password: failed to hash value")
)
