package constants

import "time"

// Context keys
const (
	ContextKeyIdentity = "identity"
)

// Authentication
const (
	TokenTTL   = 30 * time.Minute
	BcryptCost = 10
)

// Pagination
const (
	MinPage         = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)
