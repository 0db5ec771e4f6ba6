package models

import "time"

// LoginHistory records one session start. Its ID doubles as the login id
// returned to clients. IsValid flips to false exactly once on signout.
type LoginHistory struct {
	ID            string
	UserID        string
	LoginMetaData []byte // encrypted blob, nil when the client sent no metadata
	MetaNonce     []byte
	IsValid       bool
	CreatedAt     time.Time
}
