// Package common contains shared constants and sentinel errors used across
// sessionkeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// session token on inbound requests.
const AccessTokenHeaderName = "access_token"
