package config

import "time"

// Retry configuration constants
const (
	// GraphQL stats query retry configuration
	GraphQLRequestMaxAttempts       = 3
	GraphQLRequestInitialWait       = 1 * time.Second
	GraphQLRequestMaxWait           = 10 * time.Second
	GraphQLRequestBackoffMultiplier = 2.0
	GraphQLRequestTimeout           = 30 * time.Second

	// Sheet Read retry configuration
	SheetReadMaxAttempts       = 3
	SheetReadInitialWait       = 500 * time.Millisecond
	SheetReadMaxWait           = 5 * time.Second
	SheetReadBackoffMultiplier = 2.0
	SheetReadTimeout           = 30 * time.Second
)

// RetryConfig defines retry behavior for operations
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
	Timeout     time.Duration
}

// ResilienceConfig contains all retry configurations
type ResilienceConfig struct {
	GraphQLRequest RetryConfig
	SheetRead      RetryConfig
}

// DefaultResilienceConfig provides sensible defaults
var DefaultResilienceConfig = ResilienceConfig{
	GraphQLRequest: RetryConfig{
		MaxAttempts: GraphQLRequestMaxAttempts,
		InitialWait: GraphQLRequestInitialWait,
		MaxWait:     GraphQLRequestMaxWait,
		Multiplier:  GraphQLRequestBackoffMultiplier,
		Timeout:     GraphQLRequestTimeout,
	},
	SheetRead: RetryConfig{
		MaxAttempts: SheetReadMaxAttempts,
		InitialWait: SheetReadInitialWait,
		MaxWait:     SheetReadMaxWait,
		Multiplier:  SheetReadBackoffMultiplier,
		Timeout:     SheetReadTimeout,
	},
}
