package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/6ogunt48/class-manager/domain"
)

func newTestService(ttl time.Duration) *JWTServiceImpl {
	return NewJWTService("test-secret-key", "classmanager", ttl).(*JWTServiceImpl)
}

func TestJWTServiceImpl_GenerateAndValidate(t *testing.T) {
	svc := newTestService(40 * time.Minute)

	token, err := svc.Generate("kolaBouncer23")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if token == "" {
		t.Fatal("Generate() returned empty token")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.Username != "kolaBouncer23" {
		t.Errorf("claims.Username = %q, want %q", claims.Username, "kolaBouncer23")
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Errorf("expiry %d not after issue time %d", claims.ExpiresAt, claims.IssuedAt)
	}
}

func TestJWTServiceImpl_Validate_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.Generate("kolaBouncer23")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	_, err = svc.Validate(token)
	// The library rejects past-expiry tokens during parsing.
	if err == nil {
		t.Fatal("Validate() accepted an expired token")
	}
}

func TestJWTServiceImpl_Validate_TamperedSignature(t *testing.T) {
	svc := newTestService(40 * time.Minute)

	token, err := svc.Generate("kolaBouncer23")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Flip one byte in the signature segment.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	if _, err := svc.Validate(string(tampered)); err == nil {
		t.Fatal("Validate() accepted a tampered token")
	}
}

func TestJWTServiceImpl_Validate_WrongSecret(t *testing.T) {
	svc := newTestService(40 * time.Minute)
	other := NewJWTService("another-secret", "classmanager", 40*time.Minute)

	token, err := other.Generate("kolaBouncer23")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := svc.Validate(token); err == nil {
		t.Fatal("Validate() accepted a token signed with a different secret")
	}
}

func TestJWTServiceImpl_Validate_UnexpectedSigningMethod(t *testing.T) {
	svc := newTestService(40 * time.Minute)

	// Token signed with "none" must be rejected by the method check.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "kolaBouncer23",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	if _, err := svc.Validate(token); err == nil {
		t.Fatal("Validate() accepted a token with the none algorithm")
	}
}

func TestJWTServiceImpl_Validate_Garbage(t *testing.T) {
	svc := newTestService(40 * time.Minute)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "not a jwt", token: "this-is-not-a-token"},
		{name: "two segments", token: "abc.def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Validate(tt.token); err != domain.ErrTokenInvalid {
				t.Errorf("Validate(%q) error = %v, want %v", tt.token, err, domain.ErrTokenInvalid)
			}
		})
	}
}

func TestJWTServiceImpl_Validate_MissingSubject(t *testing.T) {
	svc := newTestService(40 * time.Minute)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret-key"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	if _, err := svc.Validate(signed); err != domain.ErrTokenMalformed {
		t.Errorf("Validate() error = %v, want %v", err, domain.ErrTokenMalformed)
	}
}
