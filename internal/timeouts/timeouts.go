// Package timeouts defines timeout constants shared by the servers and the client.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long servers wait for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second

// HealthProbe caps a single database ping behind the gRPC health status.
const HealthProbe = 2 * time.Second

// HealthInterval is the pause between database health probes.
const HealthInterval = 10 * time.Second

// ClientRequest caps a single API call made by the command-line client.
const ClientRequest = 10 * time.Second
