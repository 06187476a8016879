package config

import (
	"priority1_quote_server/structs"

	"github.com/MonkyMars/gecho"
)

// InitializeLogger returns the application logger, with caller info.
func InitializeLogger(cfg *structs.Config) *gecho.Logger {
	return NewLogger(cfg, true)
}

// NewLogger creates a logger at the level of cfg's environment.
func NewLogger(cfg *structs.Config, showCaller bool) *gecho.Logger {
	logLevel := gecho.ParseLogLevel(GetLogLevel(cfg))
	return gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(showCaller), gecho.WithLogLevel(logLevel)))
}
