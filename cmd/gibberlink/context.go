package main

import (
	"context"
	"fmt"
	"log/slog"

	"gibberlink/internal/config"
	"gibberlink/internal/history"
	"gibberlink/internal/logging"
	"gibberlink/internal/transport"
	"gibberlink/internal/txcodec"
)

// commandContext lazily loads configuration and wiring shared by commands.
type commandContext struct {
	configFlag *string

	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return *c.configFlag
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, resolvedPath, _, err := config.Load(c.configPath())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.cfg = cfg
	c.cfgPath = resolvedPath
	return cfg, nil
}

func (c *commandContext) ensureLogger() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	logger, err := logging.NewFromConfig(c.cfg)
	if err != nil {
		logger = logging.NewNop()
	}
	c.logger = logger
	return logger
}

// resolveContext builds the locator inputs for the loaded config. Resolution
// itself re-runs per invocation; only the inputs are shared.
func (c *commandContext) resolveContext(cfg *config.Config) txcodec.ResolveContext {
	rc := txcodec.NewResolveContext(cfg.Codec.ProjectDir)
	if cfg.Codec.BundleDir != "" {
		rc.BundleDir = cfg.Codec.BundleDir
	}
	return rc
}

// recordHistory persists the outcome when the history store is enabled.
// Best-effort: failures are logged and never surface to the caller.
func (c *commandContext) recordHistory(ctx context.Context, cfg *config.Config, req transport.Request, outcome txcodec.Outcome) {
	if cfg == nil || !cfg.History.Enabled {
		return
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		c.ensureLogger().Warn("open history store", "error", err)
		return
	}
	defer store.Close()
	if _, err := store.Record(ctx, req, outcome); err != nil {
		c.ensureLogger().Warn("record invocation history", "error", err)
	}
}
