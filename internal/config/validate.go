package config

import (
	"fmt"

	"gibberlink/internal/transport"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTransport(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTransport() error {
	if _, err := transport.ParseProtocol(c.Transport.Protocol); err != nil {
		return fmt.Errorf("transport.protocol: %w", err)
	}
	// Volume is deliberately not range-checked: out-of-range values are
	// clamped at request time, never rejected.
	return nil
}
