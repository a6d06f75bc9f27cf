package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gibberlink/internal/transport"
	"gibberlink/internal/txcodec"
)

func newEncodeCommand(ctx *commandContext) *cobra.Command {
	var textFlag string
	var protocolFlag string
	var volumeFlag int
	var outFlag string
	var noPlay bool

	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text to Gibberlink audio and play it",
		Long: `Encode text to a Gibberlink (ggwave) WAV file via the gibberlink-tx codec.

The payload comes from --text, positional arguments, or standard input, in
that order of precedence. Piped stdin is passed to the codec verbatim.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			token := protocolFlag
			if !cmd.Flags().Changed("protocol") {
				token = cfg.Transport.Protocol
			}
			protocol, err := transport.ParseProtocol(token)
			if err != nil {
				return err
			}

			volume := volumeFlag
			if !cmd.Flags().Changed("volume") {
				volume = cfg.Transport.Volume
			}
			outputPath := outFlag
			if !cmd.Flags().Changed("out") {
				outputPath = cfg.Transport.Output
			}
			play := cfg.Transport.Play
			if noPlay {
				play = false
			}

			req := transport.Request{
				Mode:       transport.ModeEncode,
				Text:       textFlag,
				Protocol:   protocol,
				Volume:     volume,
				OutputPath: outputPath,
				Play:       play,
			}
			if req.Text == "" && len(args) > 0 {
				req.Text = strings.Join(args, " ")
			}
			if req.Text == "" && !isatty.IsTerminal(os.Stdin.Fd()) {
				payload, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin payload: %w", err)
				}
				req.StdinBytes = payload
			}

			req.Normalize()
			if err := req.Validate(); err != nil {
				return err
			}

			logger.Debug("encoding text",
				"protocol", req.Protocol.Token(),
				"volume", req.Volume,
				"out", req.OutputPath,
				"play", req.Play,
			)

			outcome := txcodec.Execute(cmd.Context(), ctx.resolveContext(cfg), req)
			ctx.recordHistory(cmd.Context(), cfg, req, outcome)
			return surfaceOutcome(cmd, outcome)
		},
	}

	cmd.Flags().StringVarP(&textFlag, "text", "t", "", "Text to encode (reads stdin if omitted)")
	cmd.Flags().StringVar(&protocolFlag, "protocol", "", "Protocol token family:speed (see 'gibberlink protocols')")
	cmd.Flags().IntVar(&volumeFlag, "volume", 0, "Volume 0-100 (out-of-range values are clamped)")
	cmd.Flags().StringVar(&outFlag, "out", "", "Output WAV path")
	cmd.Flags().BoolVar(&noPlay, "no-play", false, "Do not play the audio after generating")

	return cmd
}
