package txcodec

import (
	"errors"
	"fmt"
)

var (
	// ErrBuildToolMissing reports that cargo is not installed, so the
	// fresh-build fallback cannot run at all.
	ErrBuildToolMissing = errors.New("cargo not found; install Rust (https://rustup.rs/) to build the codec binary")

	// ErrBinaryMissingAfterBuild reports a build that exited zero without
	// producing the expected binary. Terminal: the locator never rebuilds.
	ErrBinaryMissingAfterBuild = errors.New("build succeeded but codec binary not found; check the build output")
)

// BuildError reports a codec build that ran and exited non-zero.
type BuildError struct {
	Code int
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("codec build failed with exit code %d", e.Code)
}
