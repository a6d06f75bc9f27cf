package txcodec

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// BinaryName is the codec executable's base name; Windows adds ".exe".
const BinaryName = "gibberlink-tx"

// BundleDirEnv points at a packaged app's extraction directory when set.
const BundleDirEnv = "GIBBERLINK_BUNDLE_DIR"

// Origin identifies which search strategy produced a resolved path.
type Origin string

const (
	OriginBundle   Origin = "bundle"
	OriginAdjacent Origin = "adjacent"
	OriginDevTree  Origin = "devtree"
	OriginBuilt    Origin = "built"
)

// Location is a resolved codec executable. Immutable once returned; callers
// treat the path as read-only and re-resolve per invocation.
type Location struct {
	Path   string
	Origin Origin
}

// ResolveContext carries the filesystem roots the locator probes. Zero-value
// fields disable the corresponding strategy (except ProjectDir, which the
// dev-tree and build strategies require).
type ResolveContext struct {
	BundleDir   string
	LauncherDir string
	ProjectDir  string
	BuildTool   string
	Windows     bool
}

// NewResolveContext builds a context from the running process: bundle dir
// from the environment, launcher dir from the executable's own location, and
// the companion project checkout as provided.
func NewResolveContext(projectDir string) ResolveContext {
	rc := ResolveContext{
		BundleDir:  os.Getenv(BundleDirEnv),
		ProjectDir: projectDir,
		Windows:    runtime.GOOS == "windows",
	}
	if exe, err := os.Executable(); err == nil {
		rc.LauncherDir = filepath.Dir(exe)
	}
	return rc
}

func (rc ResolveContext) executableName() string {
	if rc.Windows {
		return BinaryName + ".exe"
	}
	return BinaryName
}

func (rc ResolveContext) devTreePath() string {
	return filepath.Join(rc.ProjectDir, "target", "release", rc.executableName())
}

// strategy probes one deployment layout. A probe reports no match with
// ok=false; only the build fallback can fail with an error.
type strategy struct {
	origin Origin
	probe  func(ctx context.Context, rc ResolveContext) (string, bool, error)
}

func probeStrategies() []strategy {
	return []strategy{
		{OriginBundle, probeBundle},
		{OriginAdjacent, probeAdjacent},
		{OriginDevTree, probeDevTree},
	}
}

func strategies() []strategy {
	return append(probeStrategies(), strategy{OriginBuilt, probeBuild})
}

// Probe reports where the codec binary currently sits without triggering the
// fresh-build fallback. Diagnostics only; Resolve is the real entry point.
func Probe(ctx context.Context, rc ResolveContext) (Location, bool) {
	for _, s := range probeStrategies() {
		path, ok, err := s.probe(ctx, rc)
		if err == nil && ok {
			return Location{Path: path, Origin: s.origin}, true
		}
	}
	return Location{}, false
}

// Resolve walks the strategy list in order and returns the first hit. Every
// call re-runs the walk; nothing is cached between invocations.
func Resolve(ctx context.Context, rc ResolveContext) (Location, error) {
	for _, s := range strategies() {
		path, ok, err := s.probe(ctx, rc)
		if err != nil {
			return Location{}, err
		}
		if ok {
			return Location{Path: path, Origin: s.origin}, nil
		}
	}
	// probeBuild either errors or produces a path; the walk cannot fall through.
	return Location{}, ErrBinaryMissingAfterBuild
}

func probeBundle(_ context.Context, rc ResolveContext) (string, bool, error) {
	dir := strings.TrimSpace(rc.BundleDir)
	if dir == "" {
		return "", false, nil
	}
	candidate := filepath.Join(dir, rc.executableName())
	return candidate, fileExists(candidate), nil
}

func probeAdjacent(_ context.Context, rc ResolveContext) (string, bool, error) {
	dir := strings.TrimSpace(rc.LauncherDir)
	if dir == "" {
		return "", false, nil
	}
	candidate := filepath.Join(dir, rc.executableName())
	return candidate, fileExists(candidate), nil
}

func probeDevTree(_ context.Context, rc ResolveContext) (string, bool, error) {
	if strings.TrimSpace(rc.ProjectDir) == "" {
		return "", false, nil
	}
	candidate := rc.devTreePath()
	return candidate, fileExists(candidate), nil
}

func probeBuild(ctx context.Context, rc ResolveContext) (string, bool, error) {
	if err := buildCodec(ctx, rc); err != nil {
		return "", false, err
	}
	// Exactly one re-check after a successful build; a still-missing binary
	// is terminal rather than retried.
	candidate := rc.devTreePath()
	if !fileExists(candidate) {
		return "", false, ErrBinaryMissingAfterBuild
	}
	return candidate, true, nil
}

// fileExists is a plain existence check. A found-but-unexecutable binary is
// allowed through and fails later at invocation.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
