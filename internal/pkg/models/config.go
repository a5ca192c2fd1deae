package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	JWT       JWTConfig
	OTP       OTPConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
	Store     StoreConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// MongoConfig contains document database connection configuration
type MongoConfig struct {
	URI      string
	Database string
	Timeout  int // connection timeout in seconds
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// OTPConfig contains OTP generation and lifecycle configuration
type OTPConfig struct {
	TTLMinutes             int
	CodeLength             int
	CleanupIntervalMinutes int
}

// RateLimitConfig contains fixed-window request limiting configuration
type RateLimitConfig struct {
	MaxRequests   int
	WindowSeconds int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// StoreConfig selects the document store backend
type StoreConfig struct {
	Backend string // "mongo" or "memory"
}
