// Package client talks to the gophtodo HTTP API.
//
// # Overview
//
// Client is the transport-agnostic contract used by the CLI; HTTPClient
// implements it over net/http. HTTPClient keeps the token pair returned by
// Login and attaches the access token to every task call. When the server
// answers 401 and a refresh token is held, the client exchanges it once for
// a new access token and repeats the request.
//
// # Error Handling
//
// Failures are reported as *APIError values that unwrap to one of the
// sentinel errors (ErrUnauthorized, ErrNotFound, ErrAlreadyExists,
// ErrValidation), so callers can match with errors.Is. Transport failures
// unwrap to ErrUnavailable.
package client
