package transport

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingInput marks requests that arrived without a usable payload.
	ErrMissingInput = errors.New("missing required input")
	// ErrProtocolToken marks tokens outside the family:speed grid.
	ErrProtocolToken = errors.New("malformed protocol token")
)

// Mode distinguishes encoding text to audio from decoding a recorded file.
type Mode int

const (
	ModeEncode Mode = iota
	ModeDecode
)

// String names the mode for logs and history rows.
func (m Mode) String() string {
	if m == ModeDecode {
		return "decode"
	}
	return "encode"
}

// DefaultOutputPath is used when a caller leaves the output file blank.
const DefaultOutputPath = "gibberlink.wav"

// Request is a caller's transport intent after validation and normalization.
//
// In encode mode exactly one of Text/StdinBytes carries the payload, Text
// taking precedence. In decode mode only DecodeInputPath is consulted.
type Request struct {
	Mode            Mode
	Text            string
	StdinBytes      []byte
	Protocol        Protocol
	Volume          int
	OutputPath      string
	Play            bool
	DecodeInputPath string
}

// ClampVolume forces a volume into the closed [0,100] interval. Out-of-range
// values are clamped rather than rejected; in-range values pass unchanged.
func ClampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Normalize clamps the volume and applies the default output filename. It is
// lenient on purpose: normalization never fails a request.
func (r *Request) Normalize() {
	r.Volume = ClampVolume(r.Volume)
	if strings.TrimSpace(r.OutputPath) == "" {
		r.OutputPath = DefaultOutputPath
	}
}

// Validate checks that the request carries the inputs its mode requires.
func (r *Request) Validate() error {
	switch r.Mode {
	case ModeDecode:
		if strings.TrimSpace(r.DecodeInputPath) == "" {
			return fmt.Errorf("%w: decode requires a WAV file path", ErrMissingInput)
		}
	default:
		if r.Text == "" && len(r.StdinBytes) == 0 {
			return fmt.Errorf("%w: encode requires text or a stdin payload", ErrMissingInput)
		}
	}
	return nil
}
