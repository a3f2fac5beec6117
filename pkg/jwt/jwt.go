package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"
)

// JWT header constants required by RFC 7519
const (
	HeaderType      = "JWT"
	HeaderAlgorithm = "HS256"
)

// Header represents the JWT header as defined in RFC 7515
type Header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// Service handles JWT token generation and validation using HMAC-SHA256.
type Service struct {
	signingKey []byte
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for exp/nbf checks and for
// computing expirations in Sign.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a new JWT service with the provided signing key.
func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		signingKey: signingKey,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewFromString creates a new JWT service from a string signing key.
func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	return New([]byte(signingKey), opts...)
}

// Generate creates a JWT token with the given claims.
// Accepts any JSON-serializable claims structure and returns a signed JWT string.
func (s *Service) Generate(claims any) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	headerJSON, err := json.Marshal(Header{Type: HeaderType, Algorithm: HeaderAlgorithm})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	payload := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)
	return payload + "." + s.sign(payload), nil
}

// Sign generates a token for payload. A positive ttl sets the exp claim to
// now+ttl; otherwise the token never expires. payload itself is not modified.
// exp and nbf in payload must be numeric, or Sign fails with ErrInvalidToken.
func (s *Service) Sign(payload map[string]any, ttl time.Duration) (string, error) {
	if payload == nil {
		return "", ErrMissingClaims
	}

	claims := make(MapClaims, len(payload)+1)
	maps.Copy(claims, payload)
	for _, name := range []string{"exp", "nbf"} {
		if _, err := claims.numeric(name); err != nil {
			return "", err
		}
	}
	if ttl > 0 {
		claims["exp"] = s.now().Add(ttl).Unix()
	}

	return s.Generate(claims)
}

// Parse validates a JWT token and unmarshals its claims into the provided structure.
// Performs signature verification, algorithm validation, and temporal claim checks.
func (s *Service) Parse(tokenString string, claims any) error {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return ErrMalformedToken
	}

	headerEncoded, claimsEncoded, signatureEncoded := parts[0], parts[1], parts[2]

	// Constant-time comparison to prevent timing attacks
	expectedSignature := s.sign(headerEncoded + "." + claimsEncoded)
	if subtle.ConstantTimeCompare([]byte(signatureEncoded), []byte(expectedSignature)) != 1 {
		return ErrInvalidSignature
	}

	headerJSON, err := base64URLDecode(headerEncoded)
	if err != nil {
		return errors.Join(ErrMalformedToken, err)
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return errors.Join(ErrMalformedToken, err)
	}

	// Reject unexpected algorithms to prevent algorithm confusion attacks
	if header.Algorithm != HeaderAlgorithm {
		return ErrUnexpectedSigningMethod
	}

	claimsJSON, err := base64URLDecode(claimsEncoded)
	if err != nil {
		return errors.Join(ErrMalformedToken, err)
	}

	if err := json.Unmarshal(claimsJSON, claims); err != nil {
		return errors.Join(ErrMalformedToken, err)
	}

	switch v := claims.(type) {
	case interface{ ValidAt(time.Time) error }:
		return v.ValidAt(s.now())
	case interface{ Valid() error }:
		return v.Valid()
	}
	return nil
}

// Verify parses tokenString into free-form claims.
func (s *Service) Verify(tokenString string) (MapClaims, error) {
	var claims MapClaims
	if err := s.Parse(tokenString, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// sign creates a base64url HMAC-SHA256 signature for the given payload.
func (s *Service) sign(payload string) string {
	h := hmac.New(sha256.New, s.signingKey)
	h.Write([]byte(payload))
	return base64URLEncode(h.Sum(nil))
}

// base64URLEncode encodes data using base64url encoding without padding (RFC 7515).
func base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func base64URLDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
