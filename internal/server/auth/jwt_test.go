package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
)

func TestGenerateAndParseSessionToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateSessionToken("user-1", "login-1", TokenTypeInitial, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken error: %v", err)
	}

	claims, err := ParseSessionToken(token, secret)
	if err != nil {
		t.Fatalf("ParseSessionToken error: %v", err)
	}
	if claims.UserID != "user-1" || claims.LoginID != "login-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.TokenType != TokenTypeInitial {
		t.Fatalf("unexpected token type: %q", claims.TokenType)
	}
}

func TestParseSessionToken_RefreshType(t *testing.T) {
	secret := []byte("k")

	token, err := GenerateSessionToken("u1", "l1", TokenTypeRefresh, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken error: %v", err)
	}

	claims, err := ParseSessionToken(token, secret)
	if err != nil {
		t.Fatalf("ParseSessionToken error: %v", err)
	}
	if claims.TokenType != TokenTypeRefresh {
		t.Fatalf("want REFRESH, got %q", claims.TokenType)
	}
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	token, err := GenerateSessionToken("u1", "l1", TokenTypeInitial, []byte("right"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken error: %v", err)
	}

	if _, err := ParseSessionToken(token, []byte("wrong")); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestParseSessionToken_Expired(t *testing.T) {
	secret := []byte("k")

	token, err := GenerateSessionToken("u1", "l1", TokenTypeInitial, secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateSessionToken error: %v", err)
	}

	if _, err := ParseSessionToken(token, secret); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseSessionToken_Garbage(t *testing.T) {
	if _, err := ParseSessionToken("not-a-token", []byte("k")); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}
