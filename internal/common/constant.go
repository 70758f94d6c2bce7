// Package common contains shared constants and sentinel errors used across
// gophtodo components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the only authorization scheme the API accepts, matched
// case-insensitively, and the token_type it reports.
const BearerScheme = "bearer"

// Token kinds carried in the "kind" claim.
const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

// MaxTaskLength is the upper bound for task text, in characters.
const MaxTaskLength = 100
