// SPDX-License-Identifier: MIT
package explore

import (
	"io"
	"log"
)

// sessionConfig holds the knobs a Session's options mutate. resolveConfig
// starts from a logger that writes to io.Discard.
type sessionConfig struct {
	logger *log.Logger
}

// Option customizes a Session before exploration begins.
type Option func(*sessionConfig)

// WithLogger directs round-by-round diagnostics (accepted implications,
// rejected proposals, counterexamples added) to l. Panics on nil, matching
// the option-constructors-validate-and-panic convention used throughout
// this library's builders.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("explore: WithLogger(nil)")
	}
	return func(c *sessionConfig) {
		c.logger = l
	}
}

func resolveConfig(opts []Option) *sessionConfig {
	c := &sessionConfig{logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
