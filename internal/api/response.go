// Package api is the thin HTTP transport over the collection engine. It
// parses requests, invokes the engine, and serializes results into the
// uniform response envelope.
package api

import (
	"time"

	"github.com/mkows/sysscope/internal/models"
)

// Envelope is the uniform wrapper around every response. Data is present
// iff Success is true. Timestamp records envelope construction time in the
// host's local zone, not collection time.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

// ok wraps a successful result.
func ok(message string, data any) Envelope {
	return Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().Format(models.TimeFormat),
	}
}

// fail wraps a failure; the envelope carries no data.
func fail(message string) Envelope {
	return Envelope{
		Success:   false,
		Message:   message,
		Timestamp: time.Now().Format(models.TimeFormat),
	}
}
