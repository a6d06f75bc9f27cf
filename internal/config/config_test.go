package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gibberlink/internal/transport"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize defaults: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate defaults: %v", err)
	}
	if cfg.Transport.Volume != 75 {
		t.Fatalf("unexpected default volume %d", cfg.Transport.Volume)
	}
	if !cfg.Transport.Play {
		t.Fatalf("expected play enabled by default")
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[codec]
project_dir = "` + filepath.Join(dir, "codec-src") + `"

[transport]
protocol = "ultrasound:fastest"
volume = 20
play = false
output = "msg.wav"

[logging]
format = "JSON"
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %s to be used, got %s exists=%v", path, resolved, exists)
	}
	if cfg.Transport.Protocol != "ultrasound:fastest" {
		t.Fatalf("protocol not loaded: %q", cfg.Transport.Protocol)
	}
	if cfg.Transport.Volume != 20 || cfg.Transport.Play {
		t.Fatalf("transport overrides not applied: %+v", cfg.Transport)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging values not normalized: %+v", cfg.Logging)
	}
	if !filepath.IsAbs(cfg.Codec.ProjectDir) {
		t.Fatalf("project dir not expanded to absolute path: %q", cfg.Codec.ProjectDir)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatalf("expected missing config to be reported as absent")
	}
	if cfg.Transport.Protocol != "audible:fast" {
		t.Fatalf("defaults not applied: %q", cfg.Transport.Protocol)
	}
}

func TestLoadRejectsMalformedProtocol(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[transport]\nprotocol = \"shortwave:fast\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := Load(path)
	if !errors.Is(err, transport.ErrProtocolToken) {
		t.Fatalf("expected protocol token error, got %v", err)
	}
}

func TestBundleDirEnvFallback(t *testing.T) {
	t.Setenv("GIBBERLINK_BUNDLE_DIR", "~/bundles")
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("home dir: %v", err)
	}
	if cfg.Codec.BundleDir != filepath.Join(home, "bundles") {
		t.Fatalf("bundle dir env fallback not expanded: %q", cfg.Codec.BundleDir)
	}
}

func TestCreateSampleWritesEmbeddedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[transport]") {
		t.Fatalf("sample config missing transport section")
	}
}
