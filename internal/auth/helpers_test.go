package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_KEY", "test-key")

	user := &User{ID: primitive.NewObjectID(), Name: "Jane Doe", Email: "jane@example.com"}
	token, err := GenerateJWT(user, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != user.ID.Hex() || claims.Role != string(RolePatient) {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateJWTRejectsMissingExpiry(t *testing.T) {
	t.Setenv("JWT_KEY", "test-key")

	// Validly signed but carries no exp claim.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &JWTClaims{
		UserID: primitive.NewObjectID().Hex(),
		Name:   "Jane Doe",
	})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateJWT(signed); err == nil {
		t.Fatal("expected token without expiry to be rejected")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Fatal("expected wrong password to fail")
	}
}

func TestUserRole(t *testing.T) {
	cases := []struct {
		isAdmin  bool
		isDoctor bool
		want     Role
	}{
		{
			want: RolePatient,
		},
		{
			isDoctor: true,
			want:     RoleDoctor,
		},
		{
			isAdmin: true,
			want:    RoleAdmin,
		},
		{
			// Admin wins when both flags are set.
			isAdmin:  true,
			isDoctor: true,
			want:     RoleAdmin,
		},
	}

	for _, c := range cases {
		u := &User{IsAdmin: c.isAdmin, IsDoctor: c.isDoctor}
		if got := u.Role(); got != c.want {
			t.Fatalf("isAdmin=%v isDoctor=%v: expected %s, got %s", c.isAdmin, c.isDoctor, c.want, got)
		}
	}
}
