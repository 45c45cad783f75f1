package utils

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := CreateJWT("admin@volleyball.com", "secret", time.Hour)
	if err != nil {
		t.Fatalf("error creating token: %v", err)
	}

	claims, err := VerifyJWT(token, "secret")
	if err != nil {
		t.Fatalf("error verifying token: %v", err)
	}
	if claims["sub"] != "admin@volleyball.com" {
		t.Errorf("unexpected subject: %v", claims["sub"])
	}
}

func TestVerifyJWTWrongSecret(t *testing.T) {
	token, err := CreateJWT("admin@volleyball.com", "secret", time.Hour)
	if err != nil {
		t.Fatalf("error creating token: %v", err)
	}

	if _, err := VerifyJWT(token, "other-secret"); err == nil {
		t.Error("token verified with the wrong secret")
	}
}

func TestVerifyJWTGarbage(t *testing.T) {
	if _, err := VerifyJWT("not.a.token", "secret"); err == nil {
		t.Error("garbage token verified")
	}
}

func TestVerifyJWTExpired(t *testing.T) {
	token, err := CreateJWT("admin@volleyball.com", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("error creating token: %v", err)
	}

	if _, err := VerifyJWT(token, "secret"); err == nil {
		t.Error("expired token verified")
	}
}
