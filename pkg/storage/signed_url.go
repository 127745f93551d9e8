package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const downloadAudience = "download"

var (
	// ErrInvalidToken is returned for malformed, forged or foreign tokens.
	ErrInvalidToken = errors.New("invalid download token")
	// ErrTokenExpired is returned once a well-formed token has lapsed.
	ErrTokenExpired = errors.New("download token expired")
)

type linkClaims struct {
	Path string `json:"path"`
	jwt.RegisteredClaims
}

// SignedURLSigner issues short-lived download tokens that bind the owning
// record (a case or document) to a stored file path.
type SignedURLSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSignedURLSigner constructs a signer. A non-positive ttl defaults to 24h.
func NewSignedURLSigner(secret string, ttl time.Duration) *SignedURLSigner {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SignedURLSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock returns a copy of s reading time from now.
func (s *SignedURLSigner) WithClock(now func() time.Time) *SignedURLSigner {
	clone := *s
	clone.now = now
	return &clone
}

// Generate signs a token for relPath owned by ownerID.
func (s *SignedURLSigner) Generate(ownerID, relPath string) (string, time.Time, error) {
	if ownerID == "" || relPath == "" {
		return "", time.Time{}, fmt.Errorf("owner id and path required")
	}
	if len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("signing secret missing")
	}
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl).Truncate(time.Second)
	claims := linkClaims{
		Path: relPath,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID,
			Audience:  jwt.ClaimStrings{downloadAudience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign download token: %w", err)
	}
	return token, expiresAt, nil
}

// Parse verifies token and returns what it was issued for. Expiry is not
// enforced when allowExpired is set.
func (s *SignedURLSigner) Parse(token string, allowExpired bool) (ownerID, relPath string, expiresAt time.Time, err error) {
	var claims linkClaims
	_, err = jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return "", "", time.Time{}, ErrInvalidToken
	}
	if claims.Subject == "" || claims.Path == "" || claims.ExpiresAt == nil || !audienceMatches(claims.Audience) {
		return "", "", time.Time{}, ErrInvalidToken
	}
	expiresAt = claims.ExpiresAt.Time
	if !allowExpired && !s.now().Before(expiresAt) {
		return "", "", time.Time{}, ErrTokenExpired
	}
	return claims.Subject, claims.Path, expiresAt, nil
}

func audienceMatches(aud jwt.ClaimStrings) bool {
	for _, a := range aud {
		if a == downloadAudience {
			return true
		}
	}
	return false
}
