package jwt

import (
	"encoding/json"
	"math"
	"time"
)

// StandardClaims represents the registered JWT claims defined in RFC 7519 Section 4.1.
// Temporal claims are Unix timestamps.
type StandardClaims struct {
	ID        string `json:"jti,omitempty"` // JWT ID
	Subject   string `json:"sub,omitempty"` // Subject, typically a user or document id
	Issuer    string `json:"iss,omitempty"` // Issuer
	Audience  string `json:"aud,omitempty"` // Audience
	ExpiresAt int64  `json:"exp,omitempty"` // Expiration time
	NotBefore int64  `json:"nbf,omitempty"` // Not before
	IssuedAt  int64  `json:"iat,omitempty"` // Issued at
}

// Valid validates the temporal claims against the current time.
func (c StandardClaims) Valid() error {
	return c.ValidAt(time.Now())
}

// ValidAt validates the temporal claims against now.
// Zero values are treated as unset and ignored.
func (c StandardClaims) ValidAt(now time.Time) error {
	return validTimes(now.Unix(), c.ExpiresAt, c.NotBefore)
}

// MapClaims is a free-form claims set. It is what the façade signs and
// returns, so arbitrary payloads survive a round trip.
type MapClaims map[string]any

// Valid validates exp and nbf against the current time.
func (c MapClaims) Valid() error {
	return c.ValidAt(time.Now())
}

// ValidAt validates exp and nbf against now. Missing claims are ignored;
// present claims that are not numbers make the token invalid.
func (c MapClaims) ValidAt(now time.Time) error {
	exp, err := c.numeric("exp")
	if err != nil {
		return err
	}
	nbf, err := c.numeric("nbf")
	if err != nil {
		return err
	}
	return validTimes(now.Unix(), exp, nbf)
}

// ExpiresAt returns the exp claim as a time, if present and numeric.
func (c MapClaims) ExpiresAt() (time.Time, bool) {
	exp, err := c.numeric("exp")
	if err != nil || exp == 0 {
		return time.Time{}, false
	}
	return time.Unix(exp, 0), true
}

func (c MapClaims) numeric(name string) (int64, error) {
	raw, ok := c[name]
	if !ok || raw == nil {
		return 0, nil
	}
	switch v := raw.(type) {
	case float64:
		return int64(math.Floor(v)), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case float32:
		return int64(math.Floor(float64(v))), nil
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0, ErrInvalidToken
		}
		return int64(math.Floor(n)), nil
	default:
		return 0, ErrInvalidToken
	}
}

func validTimes(now, exp, nbf int64) error {
	if exp > 0 && now >= exp {
		return ErrExpiredToken
	}
	if nbf > 0 && now < nbf {
		return ErrInvalidToken
	}
	return nil
}
