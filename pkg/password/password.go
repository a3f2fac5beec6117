package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used when none is configured.
const DefaultCost = bcrypt.DefaultCost

// Hasher hashes and compares secrets with bcrypt at a fixed cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher for cost. Zero selects DefaultCost; values
// outside bcrypt's supported range are rejected.
func NewHasher(cost int) (*Hasher, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, ErrInvalidCost
	}
	return &Hasher{cost: cost}, nil
}

// Cost reports the configured bcrypt cost.
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash returns a salted bcrypt hash of value. Two calls with the same value
// produce different hashes.
func (h *Hasher) Hash(value string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(value), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", errors.Join(ErrValueTooLong, err)
		}
		return "", errors.Join(ErrHashFailed, err)
	}
	return string(hash), nil
}

// Compare reports whether value matches hash.
func (h *Hasher) Compare(hash, value string) bool {
	return Compare(hash, value)
}

// Compare reports whether value matches a bcrypt hash of any cost.
func Compare(hash, value string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(value)) == nil
}

// NeedsRehash reports whether hash was produced with a cost other than the
// hasher's, or is not a bcrypt hash at all.
func (h *Hasher) NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	return err != nil || cost != h.cost
}
