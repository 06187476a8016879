package lib

import "errors"

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("expired token")
)

// Phase errors. Each one means a later phase was attempted before the
// phase it depends on wrote its slot.
var (
	ErrNoRequest     = errors.New("no shipment request submitted")
	ErrNoQuotes      = errors.New("no quote options generated")
	ErrNoSelection   = errors.New("no quote option selected")
	ErrUnknownOption = errors.New("option is not part of the current quote")
)

// Rate quoter errors
var (
	ErrQuoterStatus   = errors.New("rate quoter returned non-success status")
	ErrQuoterResponse = errors.New("rate quoter returned malformed response")
)
