package middleware

import "time"

const (
	LogPrefix = "internal.middleware"

	HeaderRequestID = "X-Request-ID"

	DefaultRequestsPerMinute = 60
	DefaultMaxClients        = 1000
	limiterTTL               = 5 * time.Minute
)
