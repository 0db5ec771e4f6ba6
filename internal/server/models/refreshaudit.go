package models

import "time"

// RefreshAudit is an append-only record of a refresh-token issuance.
// It is never updated or read back by the engine.
type RefreshAudit struct {
	ID            string
	LoginID       string
	LoginMetaData []byte
	MetaNonce     []byte
	CreatedAt     time.Time
}
