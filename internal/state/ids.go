package state

import (
	"github.com/google/uuid"
)

// sessionID identifies this process in log lines.
var sessionID = uuid.NewString()

// NewID returns a fresh primitive identifier.
func NewID() string {
	return uuid.NewString()
}

// SessionID returns the identifier of the running board session.
func SessionID() string {
	return sessionID
}
