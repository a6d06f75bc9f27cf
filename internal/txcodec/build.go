package txcodec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

var buildCommandContext = exec.CommandContext

const buildLockName = ".gibberlink-build.lock"

// buildCodec runs the companion project's build tool in release mode with the
// project checkout as working directory. It blocks for the full compilation;
// the duration is unbounded and the caller is expected to tolerate that.
func buildCodec(ctx context.Context, rc ResolveContext) error {
	projectDir := strings.TrimSpace(rc.ProjectDir)
	if projectDir == "" {
		return errors.New("codec project directory not configured")
	}

	tool := strings.TrimSpace(rc.BuildTool)
	if tool == "" {
		tool = "cargo"
	}
	toolPath, err := exec.LookPath(tool)
	if err != nil {
		return fmt.Errorf("%w (looked for %q)", ErrBuildToolMissing, tool)
	}

	// Serialize concurrent callers: two cargo runs over one target dir clash.
	targetDir := filepath.Join(projectDir, "target")
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return fmt.Errorf("prepare build target dir: %w", err)
	}
	lock := flock.New(filepath.Join(targetDir, buildLockName))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire build lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	// Another caller may have finished the build while we waited on the lock.
	if fileExists(rc.devTreePath()) {
		return nil
	}

	cmd := buildCommandContext(ctx, toolPath, "build", "--release")
	cmd.Dir = projectDir
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &BuildError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("run %s build: %w", tool, err)
	}
	return nil
}
