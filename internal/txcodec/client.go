package txcodec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"

	"gibberlink/internal/transport"
)

var commandContext = exec.CommandContext

// ResultKind classifies how an invocation concluded.
type ResultKind string

const (
	ResultSuccess        ResultKind = "success"
	ResultCodecError     ResultKind = "codec-error"
	ResultLocatorFailure ResultKind = "locator-failure"
	ResultLaunchFailure  ResultKind = "launch-failure"
)

// Outcome captures a single codec process execution. Created per request,
// consumed immediately by the caller, never persisted beyond history rows.
type Outcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Kind     ResultKind
}

// Message renders the caller-facing text for the outcome. Success uses the
// codec's trimmed stdout. Failures follow a strict fallback chain: stderr,
// else stdout, else a synthesized "error code N" line. Codec diagnostics are
// passed through unmodified.
func (o Outcome) Message() string {
	if o.Kind == ResultSuccess {
		return strings.TrimSpace(o.Stdout)
	}
	if msg := strings.TrimSpace(o.Stderr); msg != "" {
		return msg
	}
	if msg := strings.TrimSpace(o.Stdout); msg != "" {
		return msg
	}
	return "error code " + strconv.Itoa(o.ExitCode)
}

// Client launches the resolved codec binary.
type Client struct {
	location Location
}

// NewClient wraps a resolved executable location.
func NewClient(loc Location) *Client {
	return &Client{location: loc}
}

// Location returns the executable location the client was built with.
func (c *Client) Location() Location {
	return c.location
}

// Run launches exactly one codec process for the request and waits for its
// natural completion. No timeout is imposed here: playback requests block for
// the duration of the audio.
func (c *Client) Run(ctx context.Context, req transport.Request) Outcome {
	cmd := commandContext(ctx, c.location.Path, buildArgs(req)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if req.Mode == transport.ModeEncode && req.Text == "" {
		cmd.Stdin = bytes.NewReader(req.StdinBytes)
	}

	err := cmd.Run()
	outcome := Outcome{Stdout: stdout.String(), Stderr: stderr.String()}
	switch {
	case err == nil:
		outcome.Kind = ResultSuccess
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			outcome.Kind = ResultCodecError
			outcome.ExitCode = exitErr.ExitCode()
		} else {
			// The process never started; distinct from running and failing.
			outcome.Kind = ResultLaunchFailure
			outcome.ExitCode = -1
			outcome.Stderr = err.Error()
		}
	}
	return outcome
}

// Execute resolves the codec and runs a single request against it. A locator
// failure short-circuits: no process is launched.
func Execute(ctx context.Context, rc ResolveContext, req transport.Request) Outcome {
	loc, err := Resolve(ctx, rc)
	if err != nil {
		return Outcome{Kind: ResultLocatorFailure, ExitCode: -1, Stderr: err.Error()}
	}
	return NewClient(loc).Run(ctx, req)
}

// buildArgs translates a validated request into the codec's flag contract.
func buildArgs(req transport.Request) []string {
	if req.Mode == transport.ModeDecode {
		return []string{"--decode-wav", req.DecodeInputPath}
	}
	args := []string{
		"--out", req.OutputPath,
		"--protocol", req.Protocol.Token(),
		"--volume", strconv.Itoa(req.Volume),
	}
	if req.Play {
		args = append(args, "--play")
	}
	if req.Text != "" {
		args = append(args, "--text", req.Text)
	}
	return args
}
