package models

import "time"

// User is the durable per-account profile record. Accounts are looked up by
// EmailHash, never by raw email; the column carries a unique index.
type User struct {
	ID            string
	Email         string
	EmailHash     string
	Name          string
	PhotoURL      string
	Description   string
	PublicKey     string
	FcmToken      string
	EmailVerified bool
	AuthProvider  string
	Locale        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
