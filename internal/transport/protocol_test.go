package transport

import (
	"errors"
	"testing"
)

func TestProtocolsEnumeratesFullGrid(t *testing.T) {
	combos := Protocols()
	if len(combos) != 12 {
		t.Fatalf("expected 12 protocol combinations, got %d", len(combos))
	}
	seen := make(map[string]struct{}, len(combos))
	for _, combo := range combos {
		token := combo.Token()
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate protocol token %q", token)
		}
		seen[token] = struct{}{}
	}
}

func TestParseProtocolRoundTrip(t *testing.T) {
	for _, combo := range Protocols() {
		parsed, err := ParseProtocol(combo.Token())
		if err != nil {
			t.Fatalf("parse %q: %v", combo.Token(), err)
		}
		if parsed != combo {
			t.Fatalf("round trip mismatch: %q parsed to %+v", combo.Token(), parsed)
		}
	}
}

func TestParseProtocolNormalizesCaseAndSpace(t *testing.T) {
	parsed, err := ParseProtocol("  Ultrasound:FASTEST ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := Protocol{Family: FamilyUltrasound, Speed: SpeedFastest}
	if parsed != want {
		t.Fatalf("expected %+v, got %+v", want, parsed)
	}
}

func TestParseProtocolRejectsInvalidTokens(t *testing.T) {
	for _, token := range []string{"", "audible", "audible:", ":fast", "radio:fast", "audible:warp", "audible:fast:extra"} {
		if _, err := ParseProtocol(token); err == nil {
			t.Fatalf("expected %q to be rejected", token)
		} else if !errors.Is(err, ErrProtocolToken) {
			t.Fatalf("expected protocol token error for %q, got %v", token, err)
		}
	}
}
