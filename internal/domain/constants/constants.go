// Package constants holds identifiers shared by configuration and wiring.
package constants

// Deployment environments accepted in env.env.
const (
	EnvDevelop    = "develop"
	EnvTest       = "test"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Product cache backends accepted in cache.provider.
const (
	CacheProviderMemory = "memory"
	CacheProviderRedis  = "redis"
)

// Payment gateway status vocabulary. Compared case-sensitively.
const (
	PaymentStatusPaid       = "PAID"
	PaymentStatusPending    = "PENDING"
	PaymentStatusProcessing = "PROCESSING"
	PaymentStatusCancelled  = "CANCELLED"
	PaymentStatusExpired    = "EXPIRED"
)

// GatewaySuccessCode is the response code the payment gateway uses for success.
const GatewaySuccessCode = "00"
