package main

import (
	"github.com/spf13/cobra"

	"gibberlink/internal/transport"
	"gibberlink/internal/txcodec"
)

func newDecodeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file.wav>",
		Short: "Decode the text payload from a Gibberlink WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			req := transport.Request{
				Mode:            transport.ModeDecode,
				DecodeInputPath: args[0],
			}
			req.Normalize()
			if err := req.Validate(); err != nil {
				return err
			}

			outcome := txcodec.Execute(cmd.Context(), ctx.resolveContext(cfg), req)
			ctx.recordHistory(cmd.Context(), cfg, req, outcome)
			return surfaceOutcome(cmd, outcome)
		},
	}
}
