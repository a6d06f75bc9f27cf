// Package txcodec wraps the external gibberlink-tx binary: it resolves a
// runnable executable across deployment layouts, builds the codec from the
// companion Rust checkout when no binary exists yet, and launches one codec
// process per request while classifying how it concluded.
//
// Resolution is an ordered list of probe strategies (bundle dir, next to the
// launcher, dev build tree, fresh cargo build) evaluated per invocation with
// no caching. The codec itself stays a black box; its stdout/stderr pass
// through to callers verbatim.
package txcodec
