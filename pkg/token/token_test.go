package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testKey = "0123456789abcdef0123456789abcdef"

func parseToken(t *testing.T, signed string) jwt.MapClaims {
	t.Helper()

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		return []byte(testKey), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithoutClaimsValidation())
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("claims type = %T", parsed.Claims)
	}
	return claims
}

func TestJWTProvider_Claims(t *testing.T) {
	p := NewJWTProvider(testKey)

	signed, err := p.GenerateAccessToken("https://svc.example.com/api/v1/hubs/chat", "host_abc")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims := parseToken(t, signed)

	if aud, _ := claims["aud"].(string); aud != "https://svc.example.com/api/v1/hubs/chat" {
		t.Errorf("aud = %q, want resource URL", aud)
	}
	if nameid, _ := claims["nameid"].(string); nameid != "host_abc" {
		t.Errorf("nameid = %q, want %q", nameid, "host_abc")
	}
}

func TestJWTProvider_Lifetime(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := NewJWTProvider(testKey).WithLifetime(30 * time.Minute)
	p.now = func() time.Time { return fixed }

	signed, err := p.GenerateAccessToken("https://svc.example.com/api/v1/hubs/chat", "id")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims := parseToken(t, signed)
	exp, _ := claims["exp"].(float64)
	iat, _ := claims["iat"].(float64)

	if int64(iat) != fixed.Unix() {
		t.Errorf("iat = %d, want %d", int64(iat), fixed.Unix())
	}
	if int64(exp)-int64(iat) != int64((30 * time.Minute).Seconds()) {
		t.Errorf("exp-iat = %d, want 1800", int64(exp)-int64(iat))
	}
}

func TestJWTProvider_ScopedPerResource(t *testing.T) {
	p := NewJWTProvider(testKey)

	a, err := p.GenerateAccessToken("https://svc.example.com/api/v1/hubs/chat", "id")
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.GenerateAccessToken("https://svc.example.com/api/v1/hubs/chat/users/u", "id")
	if err != nil {
		t.Fatal(err)
	}

	audA, _ := parseToken(t, a)["aud"].(string)
	audB, _ := parseToken(t, b)["aud"].(string)
	if audA == audB {
		t.Error("tokens for different resources should carry different audiences")
	}
}

func TestJWTProvider_UniqueTokenID(t *testing.T) {
	p := NewJWTProvider(testKey)

	a, err := p.GenerateAccessToken("https://svc.example.com/api/v1/hubs/chat", "id")
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.GenerateAccessToken("https://svc.example.com/api/v1/hubs/chat", "id")
	if err != nil {
		t.Fatal(err)
	}

	jtiA, _ := parseToken(t, a)["jti"].(string)
	jtiB, _ := parseToken(t, b)["jti"].(string)
	if jtiA == "" || jtiB == "" {
		t.Fatal("minted tokens should carry a jti claim")
	}
	if jtiA == jtiB {
		t.Error("two minted tokens should carry distinct token IDs")
	}
}

func TestProviderFunc(t *testing.T) {
	var gotURL, gotID string
	p := ProviderFunc(func(resourceURL, senderID string) (string, error) {
		gotURL, gotID = resourceURL, senderID
		return "fixed", nil
	})

	tok, err := p.GenerateAccessToken("u", "s")
	if err != nil || tok != "fixed" {
		t.Fatalf("GenerateAccessToken = %q, %v", tok, err)
	}
	if gotURL != "u" || gotID != "s" {
		t.Errorf("args = %q, %q", gotURL, gotID)
	}
}

func TestGenerateWithLength(t *testing.T) {
	a, err := GenerateWithLength(16)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateWithLength(16)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two generated tokens should not collide")
	}
	if len(a) == 0 {
		t.Error("token should be non-empty")
	}
}
