package middleware

const (
	HeaderRequestID   = "X-Request-ID"
	HeaderClientToken = "X-Client-Token"
)
