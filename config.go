package stash

import (
	"log/slog"

	"github.com/TheBitDrifter/bark"
)

// Config holds package-wide settings shared by every store.
var Config config = config{}

type config struct {
	logger *slog.Logger
}

// SetLogger routes store diagnostics to l. A nil logger restores the
// package's bark logger.
func (c *config) SetLogger(l *slog.Logger) {
	c.logger = l
}

func (c *config) log() *slog.Logger {
	if c.logger == nil {
		c.logger = bark.For("stash")
	}
	return c.logger
}
