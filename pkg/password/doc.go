// Package password hashes secrets with bcrypt.
//
//	h, err := password.NewHasher(12)
//	hash, err := h.Hash("s3cret")
//	ok := h.Compare(hash, "s3cret")
//
// Hashes embed a random salt, so hashing the same value twice yields
// different strings that both compare true. bcrypt only reads the first 72
// bytes of input; longer values are rejected with ErrValueTooLong.
package password
