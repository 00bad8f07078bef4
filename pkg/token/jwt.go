package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLifetime is the token validity window the service expects.
const DefaultLifetime = time.Hour

// JWTProvider signs HMAC-SHA256 JWTs with the service access key.
type JWTProvider struct {
	accessKey []byte
	lifetime  time.Duration

	// now is swappable for tests.
	now func() time.Time
}

// NewJWTProvider creates a provider signing with the given access key.
func NewJWTProvider(accessKey string) *JWTProvider {
	return &JWTProvider{
		accessKey: []byte(accessKey),
		lifetime:  DefaultLifetime,
		now:       time.Now,
	}
}

// WithLifetime sets a non-default token lifetime.
func (p *JWTProvider) WithLifetime(d time.Duration) *JWTProvider {
	p.lifetime = d
	return p
}

// GenerateAccessToken implements Provider. The audience claim is the
// exact resource URL; the token is valid for nothing else.
func (p *JWTProvider) GenerateAccessToken(resourceURL, senderID string) (string, error) {
	now := p.now()

	// Tokens are minted per request; the jti makes each one traceable
	// on the service side.
	jti, err := GenerateWithLength(16)
	if err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}

	claims := jwt.MapClaims{
		"aud":    resourceURL,
		"nameid": senderID,
		"jti":    jti,
		"iat":    now.Unix(),
		"exp":    now.Add(p.lifetime).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.accessKey)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}
