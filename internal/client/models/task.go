// Package models holds the client-side view of API resources.
package models

// Task is a to-do item as returned by the API.
type Task struct {
	ID        int64  `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}
