package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gibberlink/internal/txcodec"
)

// surfaceOutcome renders a codec outcome for the terminal. Success prints the
// codec's own message; every failure kind becomes a non-zero exit with the
// diagnostic passed through untouched.
func surfaceOutcome(cmd *cobra.Command, outcome txcodec.Outcome) error {
	msg := outcome.Message()
	if outcome.Kind == txcodec.ResultSuccess {
		if msg == "" {
			msg = "Done."
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}
	return errors.New(msg)
}

// truncate shortens s to at most max runes, marking the cut with an ellipsis.
// Counting runes keeps multi-byte payload messages intact.
func truncate(s string, max int) string {
	if max <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
