package main

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"gibberlink/internal/history"
	"gibberlink/internal/transport"
)

func TestRenderProtocolTableListsEveryToken(t *testing.T) {
	out := renderProtocolTable(transport.Protocols())
	for _, protocol := range transport.Protocols() {
		if !strings.Contains(out, protocol.Token()) {
			t.Fatalf("expected token %q in table:\n%s", protocol.Token(), out)
		}
	}
}

func TestRenderHistoryTableTrimsMessages(t *testing.T) {
	long := strings.Repeat("x", historyMessageWidth+10)
	entries := []history.Entry{
		{
			CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			Mode:      "encode",
			Protocol:  "audible:fast",
			Volume:    75,
			Path:      "gibberlink.wav",
			Result:    "success",
			Message:   long,
		},
		{
			CreatedAt: time.Date(2026, 3, 1, 12, 0, 1, 0, time.UTC),
			Mode:      "decode",
			Path:      "sample.wav",
			Result:    "codec-error",
			Message:   "bad wav header",
		},
	}

	out := renderHistoryTable(entries)
	if strings.Contains(out, long) {
		t.Fatalf("expected long message to be trimmed:\n%s", out)
	}
	for _, fragment := range []string{"audible:fast", "gibberlink.wav", "sample.wav", "bad wav header", "..."} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in table:\n%s", fragment, out)
		}
	}
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	long := strings.Repeat("ф", 20)
	got := truncate(long, 10)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated string is not valid UTF-8: %q", got)
	}
	if got != strings.Repeat("ф", 7)+"..." {
		t.Fatalf("unexpected truncation result %q", got)
	}
	if short := truncate("short", 10); short != "short" {
		t.Fatalf("expected short string unchanged, got %q", short)
	}
}
