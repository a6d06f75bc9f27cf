package txcodec

import (
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gibberlink/internal/transport"
)

func scriptLocation(t *testing.T, body string) Location {
	t.Helper()
	path := filepath.Join(t.TempDir(), BinaryName)
	writeStub(t, path, body)
	return Location{Path: path, Origin: OriginAdjacent}
}

func TestRunSuccessUsesTrimmedStdout(t *testing.T) {
	loc := scriptLocation(t, "#!/bin/sh\necho 'hello world'\n")
	client := NewClient(loc)

	outcome := client.Run(context.Background(), transport.Request{
		Mode:            transport.ModeDecode,
		DecodeInputPath: "sample.wav",
	})
	if outcome.Kind != ResultSuccess {
		t.Fatalf("expected success, got %+v", outcome)
	}
	if outcome.Message() != "hello world" {
		t.Fatalf("expected trimmed stdout payload, got %q", outcome.Message())
	}
}

func TestRunCodecErrorPrefersStderr(t *testing.T) {
	loc := scriptLocation(t, "#!/bin/sh\necho 'stdout noise'\necho 'real diagnostic' >&2\nexit 1\n")
	outcome := NewClient(loc).Run(context.Background(), transport.Request{
		Mode:            transport.ModeDecode,
		DecodeInputPath: "sample.wav",
	})
	if outcome.Kind != ResultCodecError || outcome.ExitCode != 1 {
		t.Fatalf("expected codec error exit 1, got %+v", outcome)
	}
	if outcome.Message() != "real diagnostic" {
		t.Fatalf("expected stderr diagnostic, got %q", outcome.Message())
	}
}

func TestRunCodecErrorFallsBackToStdout(t *testing.T) {
	loc := scriptLocation(t, "#!/bin/sh\necho 'bad wav header'\nexit 4\n")
	outcome := NewClient(loc).Run(context.Background(), transport.Request{
		Mode:            transport.ModeDecode,
		DecodeInputPath: "sample.wav",
	})
	if outcome.ExitCode != 4 {
		t.Fatalf("expected exit code 4, got %d", outcome.ExitCode)
	}
	if outcome.Message() != "bad wav header" {
		t.Fatalf("expected stdout fallback, got %q", outcome.Message())
	}
}

func TestRunCodecErrorSynthesizesMessage(t *testing.T) {
	loc := scriptLocation(t, "#!/bin/sh\nexit 3\n")
	outcome := NewClient(loc).Run(context.Background(), transport.Request{
		Mode:            transport.ModeDecode,
		DecodeInputPath: "sample.wav",
	})
	if outcome.Message() != "error code 3" {
		t.Fatalf("expected synthesized message, got %q", outcome.Message())
	}
}

func TestRunLaunchFailureIsDistinct(t *testing.T) {
	loc := Location{Path: filepath.Join(t.TempDir(), "missing-binary"), Origin: OriginAdjacent}
	outcome := NewClient(loc).Run(context.Background(), transport.Request{
		Mode:            transport.ModeDecode,
		DecodeInputPath: "sample.wav",
	})
	if outcome.Kind != ResultLaunchFailure {
		t.Fatalf("expected launch failure, got %+v", outcome)
	}
	if outcome.Message() == "" {
		t.Fatalf("expected launch error description in message")
	}
}

func TestRunPipesStdinPayload(t *testing.T) {
	loc := scriptLocation(t, "#!/bin/sh\ncat\n")
	req := transport.Request{
		Mode:       transport.ModeEncode,
		StdinBytes: []byte("raw stream payload\n"),
		Protocol:   transport.Protocol{Family: transport.FamilyAudible, Speed: transport.SpeedFast},
		Volume:     75,
		OutputPath: "gibberlink.wav",
	}
	outcome := NewClient(loc).Run(context.Background(), req)
	if outcome.Kind != ResultSuccess {
		t.Fatalf("expected success, got %+v", outcome)
	}
	if outcome.Stdout != "raw stream payload\n" {
		t.Fatalf("stdin payload not piped verbatim, got %q", outcome.Stdout)
	}
}

func TestRunPassesEncodeFlags(t *testing.T) {
	loc := scriptLocation(t, "#!/bin/sh\necho \"$@\"\n")
	req := transport.Request{
		Mode:       transport.ModeEncode,
		Text:       "hello world",
		Protocol:   transport.Protocol{Family: transport.FamilyAudible, Speed: transport.SpeedFast},
		Volume:     150,
		OutputPath: "gibberlink.wav",
		Play:       true,
	}
	req.Normalize()
	outcome := NewClient(loc).Run(context.Background(), req)
	if outcome.Kind != ResultSuccess {
		t.Fatalf("expected success, got %+v", outcome)
	}
	echoed := outcome.Stdout
	for _, fragment := range []string{"--volume 100", "--protocol audible:fast", "--text hello world", "--play", "--out gibberlink.wav"} {
		if !strings.Contains(echoed, fragment) {
			t.Fatalf("expected argv to contain %q, got %q", fragment, echoed)
		}
	}
}

func TestBuildArgsEncode(t *testing.T) {
	req := transport.Request{
		Mode:       transport.ModeEncode,
		Text:       "hi",
		Protocol:   transport.Protocol{Family: transport.FamilyMultiTone, Speed: transport.SpeedNormal},
		Volume:     20,
		OutputPath: "out.wav",
	}
	got := buildArgs(req)
	want := []string{"--out", "out.wav", "--protocol", "mt:normal", "--volume", "20", "--text", "hi"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("argv mismatch: got %v want %v", got, want)
	}
}

func TestBuildArgsDecodeIgnoresEncodeFields(t *testing.T) {
	req := transport.Request{
		Mode:            transport.ModeDecode,
		Text:            "irrelevant",
		Volume:          80,
		OutputPath:      "out.wav",
		DecodeInputPath: "sample.wav",
	}
	got := buildArgs(req)
	want := []string{"--decode-wav", "sample.wav"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("argv mismatch: got %v want %v", got, want)
	}
}

func TestExecuteShortCircuitsOnLocatorFailure(t *testing.T) {
	rc := ResolveContext{
		ProjectDir: t.TempDir(),
		BuildTool:  "definitely-not-an-installed-build-tool",
	}
	outcome := Execute(context.Background(), rc, transport.Request{
		Mode: transport.ModeEncode,
		Text: "never sent",
	})
	if outcome.Kind != ResultLocatorFailure {
		t.Fatalf("expected locator failure, got %+v", outcome)
	}
	if !strings.Contains(outcome.Message(), "cargo") {
		t.Fatalf("expected build tool guidance in message, got %q", outcome.Message())
	}
}
