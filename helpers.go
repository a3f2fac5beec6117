package mongeasy

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongeasy/pkg/jwt"
	"github.com/dmitrymomot/mongeasy/pkg/logger"
)

// HelperOps groups the identifier, hashing and token helpers.
type HelperOps struct {
	m *Mongeasy
}

// ConvertID converts raw into an ObjectID. Accepted inputs are an ObjectID,
// a 24-character hex string, a 12-character string, or 12 raw bytes.
func (h HelperOps) ConvertID(raw any) (bson.ObjectID, error) {
	switch v := raw.(type) {
	case bson.ObjectID:
		return v, nil
	case *bson.ObjectID:
		if v != nil {
			return *v, nil
		}
	case string:
		if oid, err := bson.ObjectIDFromHex(v); err == nil {
			return oid, nil
		}
		if len(v) == len(bson.ObjectID{}) {
			var oid bson.ObjectID
			copy(oid[:], v)
			return oid, nil
		}
	case []byte:
		if len(v) == len(bson.ObjectID{}) {
			var oid bson.ObjectID
			copy(oid[:], v)
			return oid, nil
		}
	}
	return bson.NilObjectID, fmt.Errorf("%w: %v", ErrInvalidID, raw)
}

// Hash returns a salted bcrypt hash of value using the configured cost.
// Hashing the same value twice gives different results.
func (h HelperOps) Hash(value string) (string, error) {
	hash, err := h.m.hasher.Hash(value)
	if err != nil {
		return "", errors.Join(ErrHash, err)
	}
	return hash, nil
}

// CompareHash reports whether value matches a hash produced by Hash.
func (h HelperOps) CompareHash(hash, value string) bool {
	return h.m.hasher.Compare(hash, value)
}

// SignToken signs payload with key. When expire is false the token has no
// exp claim; otherwise it expires after expiresIn, which accepts Go
// durations ("2h"), a number with a unit name ("7d", "2 days", "1 hour")
// and bare seconds ("3600"). See jwt.ParseExpiration for the full grammar.
//
// An exp or nbf entry in payload must be numeric.
func (h HelperOps) SignToken(key string, payload map[string]any, expire bool, expiresIn string) (string, error) {
	svc, err := jwt.NewFromString(key, jwt.WithClock(h.m.now))
	if err != nil {
		return "", errors.Join(ErrSigning, err)
	}

	var ttl time.Duration
	if expire {
		if ttl, err = jwt.ParseExpiration(expiresIn); err != nil {
			return "", errors.Join(ErrSigning, err)
		}
	}

	token, err := svc.Sign(payload, ttl)
	if err != nil {
		return "", errors.Join(ErrSigning, err)
	}
	return token, nil
}

// VerifyToken returns the token's claims, or nil if the token is expired,
// tampered with, signed with another key, or malformed. Use ParseToken to
// tell those cases apart.
func (h HelperOps) VerifyToken(token, key string) map[string]any {
	claims, err := h.ParseToken(token, key)
	if err != nil {
		h.m.logger.Debug("token verification failed", logger.Operation("VerifyToken"), logger.Error(err))
		return nil
	}
	return claims
}

// ParseToken validates the token's signature and expiration against key and
// returns its claims. Errors are the pkg/jwt sentinels: ErrExpiredToken,
// ErrInvalidSignature, ErrMalformedToken, ErrMissingSigningKey,
// ErrUnexpectedSigningMethod and ErrInvalidToken.
func (h HelperOps) ParseToken(token, key string) (map[string]any, error) {
	svc, err := jwt.NewFromString(key, jwt.WithClock(h.m.now))
	if err != nil {
		return nil, err
	}
	claims, err := svc.Verify(token)
	if err != nil {
		return nil, err
	}
	return map[string]any(claims), nil
}
