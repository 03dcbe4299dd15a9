package constants

import "time"

const (
	BcryptCost = 10

	DefaultMaxRequestSize = 1 << 20

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	ShutdownTimeout = 30 * time.Second

	DefaultHTTPPort       = "7070"
	DefaultRequestTimeout = 5 * time.Second

	DefaultSeedAdminLogin    = "admin"
	DefaultSeedAdminPassword = "admin"
	DefaultSeedAdminName     = "Admin"
	DefaultSeedAdminAvatar   = "https://i.pravatar.cc/300?img=12"

	DefaultCORSAllowedOrigin = "*"

	DefaultLogDir   = "/var/log/feedboard"
	DefaultLogLevel = "INFO"

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28
)

type TraceIDKeyType string

const TraceIDKey TraceIDKeyType = "trace_id"
