package lib

import "github.com/google/uuid"

// NewRequestId returns a random (version 4) UUID for a submitted shipment
// request.
func NewRequestId() string {
	return uuid.New().String()
}

// NewSessionId returns a time-ordered UUID for a new session.
func NewSessionId() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
