// File: utils/constants.go
package utils

import "time"

// IdentityCachePrefix is the prefix used for Redis identity cache keys.
const IdentityCachePrefix = "identity:"

// IdentityCacheTTL is the default time-to-live for identity cache entries.
const IdentityCacheTTL = 10 * time.Minute

// BookingGuardPrefix prefixes the keys that block duplicate reservation submissions.
const BookingGuardPrefix = "booking:guard:"

// Gin context keys.
const (
	RequestIDKey  = "requestID"
	IdentityKey   = "identity"
	RequestHeader = "X-Request-ID"
)
