// Package cli provides the interactive gophtodo command-line client.
//
// It wires configuration, the HTTP API client and a REPL. Typical flow:
// register or log in, then manage tasks with list, add, done, undo, rename
// and delete. The REPL is started via App.Run(ctx), which blocks until the
// user exits or input ends.
package cli
