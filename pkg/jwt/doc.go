// Package jwt signs and verifies HS256 JSON Web Tokens.
//
// Service wraps an HMAC-SHA256 key. Generate accepts any JSON-serialisable
// claims value; Sign takes a free-form payload plus an optional lifetime and
// adds the exp claim. Parse and Verify check the signature in constant time,
// reject non-HS256 headers, and validate exp/nbf through the claims type's
// ValidAt or Valid method. StandardClaims and MapClaims both implement it.
//
// # Usage
//
//	svc, err := jwt.NewFromString(secret)
//	if err != nil {
//		return err
//	}
//
//	ttl, _ := jwt.ParseExpiration("2h")
//	token, err := svc.Sign(map[string]any{"sub": userID}, ttl)
//
//	claims, err := svc.Verify(token)
//	switch {
//	case errors.Is(err, jwt.ErrExpiredToken):
//	case errors.Is(err, jwt.ErrInvalidSignature):
//	case errors.Is(err, jwt.ErrMalformedToken):
//	}
//
// Lifetimes accepted by ParseExpiration: Go durations ("15m", "2h"),
// day/week/year suffixes ("7d", "2w", "1y") and bare seconds ("3600").
package jwt
