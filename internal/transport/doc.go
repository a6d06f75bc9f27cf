// Package transport defines the validated parameter set handed to the codec
// binary: protocol family/speed tokens, volume clamping, and the encode/decode
// request shape shared by every caller surface.
//
// The package is pure validation and normalization. It never touches the
// filesystem and never launches a process, so both the CLI and any embedding
// surface can construct requests from raw user intent and rely on identical
// rules.
package transport
