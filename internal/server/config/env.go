package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig keeps the variable names deployments already use
// (ACCESS_TOKEN_EXPIRE_MINUTES, REFRESH_TOKEN_EXPIRE_DAYS, ...).
// Zero lifetimes and cost mean "not set".
type envConfig struct {
	EndpointAddrHTTP   string `env:"HTTP_ADDR"`
	EndpointAddrGRPC   string `env:"GRPC_ADDR"`
	DatabaseDSN        string `env:"DATABASE_DSN"`
	SecretKey          string `env:"SECRET_KEY"`
	Algorithm          string `env:"ALGORITHM"`
	AccessTokenMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES"`
	RefreshTokenDays   int    `env:"REFRESH_TOKEN_EXPIRE_DAYS"`
	BcryptCost         int    `env:"BCRYPT_COST"`
	OTLPEndpoint       string `env:"OTEL_ENDPOINT"`
	LogLevel           string `env:"LOG_LEVEL"`
}

// parseEnv overlays environment variables onto config. A malformed value
// (e.g. a non-numeric lifetime) panics, like a malformed JSON file does.
func parseEnv(config *Config) {
	c := envConfig{
		EndpointAddrHTTP: config.EndpointAddrHTTP,
		EndpointAddrGRPC: config.EndpointAddrGRPC,
		DatabaseDSN:      config.DatabaseDSN,
		SecretKey:        config.SecretKey,
		Algorithm:        config.Algorithm,
		OTLPEndpoint:     config.OTLPEndpoint,
		LogLevel:         config.LogLevel,
	}

	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.Algorithm = c.Algorithm
	config.OTLPEndpoint = c.OTLPEndpoint
	config.LogLevel = c.LogLevel

	if c.AccessTokenMinutes != 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenMinutes) * time.Minute
	}
	if c.RefreshTokenDays != 0 {
		config.RefreshTokenValidityDuration = time.Duration(c.RefreshTokenDays) * 24 * time.Hour
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
}
