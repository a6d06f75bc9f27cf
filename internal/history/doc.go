// Package history persists a local record of completed codec invocations in
// SQLite. The CLI writes one row per run (mode, protocol, volume, paths, how
// the process concluded) and reads them back for the history command.
// Recording is best-effort; a failed write never fails the user's request.
package history
