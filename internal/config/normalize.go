package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCodec(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeTransport()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeCodec() error {
	var err error
	if strings.TrimSpace(c.Codec.ProjectDir) == "" {
		c.Codec.ProjectDir = defaultProjectDir
	}
	if c.Codec.ProjectDir, err = expandPath(c.Codec.ProjectDir); err != nil {
		return fmt.Errorf("codec.project_dir: %w", err)
	}
	c.Codec.BundleDir = strings.TrimSpace(c.Codec.BundleDir)
	if c.Codec.BundleDir == "" {
		if value, ok := os.LookupEnv("GIBBERLINK_BUNDLE_DIR"); ok {
			c.Codec.BundleDir = strings.TrimSpace(value)
		}
	}
	if c.Codec.BundleDir != "" {
		if c.Codec.BundleDir, err = expandPath(c.Codec.BundleDir); err != nil {
			return fmt.Errorf("codec.bundle_dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	var err error
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryDB
	}
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeTransport() {
	c.Transport.Protocol = strings.ToLower(strings.TrimSpace(c.Transport.Protocol))
	if c.Transport.Protocol == "" {
		c.Transport.Protocol = defaultProtocol
	}
	c.Transport.Output = strings.TrimSpace(c.Transport.Output)
	if c.Transport.Output == "" {
		c.Transport.Output = defaultOutput
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
