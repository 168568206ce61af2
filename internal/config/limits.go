package config

import "time"

type Limits struct {
	MaxConcurrentProviders int             `yaml:"max_concurrent_providers" validate:"required,min=1,max=32"`
	MaxRetries             int             `yaml:"max_retries" validate:"min=0,max=10"`
	ProviderTimeout        time.Duration   `yaml:"provider_timeout" validate:"required,min=10s,max=1h"`
	RateLimit              RateLimitConfig `yaml:"rate_limit" validate:"required"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" validate:"required,min=1,max=1000"`
	BurstSize         int `yaml:"burst_size" validate:"required,min=1,max=100"`
}

func DefaultLimits() Limits {
	return Limits{
		MaxConcurrentProviders: 4,
		MaxRetries:             3,
		ProviderTimeout:        2 * time.Minute,
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 30,
			BurstSize:         10,
		},
	}
}
