// Package common contains constants, sentinel errors and helpers shared by
// the FinSync client packages.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"
	// BearerPrefix precedes the token in the Authorization header.
	BearerPrefix = "Bearer "
	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	// AppName is shown in the navigation header.
	AppName = "FinSync"
)
