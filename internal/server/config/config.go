// Package config handles configuration for the server component:
// defaults, then a JSON file overlay, then environment variables, then
// command-line flags. Later sources win.
package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the gophtodo server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the JSON API.
//   - EndpointAddrGRPC: bind address for the gRPC health service.
//   - DatabaseDSN: postgres:// URL (pgx) or SQLite path/URI (modernc).
//   - SecretKey / Algorithm: HMAC key and JWT signing method (HS256/384/512).
//   - AccessTokenValidityDuration / RefreshTokenValidityDuration: token lifetimes.
//   - BcryptCost: work factor for password hashes.
//   - OTLPEndpoint: OTLP/HTTP collector URL; empty disables tracing.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP             string
	EndpointAddrGRPC             string
	DatabaseDSN                  string
	SecretKey                    string
	Algorithm                    string
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
	BcryptCost                   int
	OTLPEndpoint                 string
	LogLevel                     string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key is insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8000"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = "file:todos.db"
	c.SecretKey = "API_SECRET_KEY_TEST"
	c.Algorithm = "HS256"
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.RefreshTokenValidityDuration = 7 * 24 * time.Hour
	c.BcryptCost = 12
	c.OTLPEndpoint = ""
	c.LogLevel = "info"
}

var supportedAlgorithms = map[string]struct{}{
	"HS256": {},
	"HS384": {},
	"HS512": {},
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("secret key must not be empty")
	}
	if _, ok := supportedAlgorithms[c.Algorithm]; !ok {
		return fmt.Errorf("unsupported signing algorithm %q", c.Algorithm)
	}
	if c.AccessTokenValidityDuration <= 0 {
		return fmt.Errorf("access token validity must be positive, got %s", c.AccessTokenValidityDuration)
	}
	if c.RefreshTokenValidityDuration <= 0 {
		return fmt.Errorf("refresh token validity must be positive, got %s", c.RefreshTokenValidityDuration)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("database dsn must not be empty")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
