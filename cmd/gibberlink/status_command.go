package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"gibberlink/internal/deps"
	"gibberlink/internal/txcodec"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report codec binary, build tool, and output directory readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			fmt.Fprintf(out, "Config: %s\n", ctx.cfgPath)

			// Probe-only: status must never trigger a cargo build.
			rc := ctx.resolveContext(cfg)
			if loc, ok := txcodec.Probe(cmd.Context(), rc); ok {
				fmt.Fprintln(out, renderStatusLine("Codec binary", statusOK,
					fmt.Sprintf("%s (%s)", loc.Path, loc.Origin), colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("Codec binary", statusWarn,
					"not found; first encode/decode will build it from "+cfg.Codec.ProjectDir, colorize))
			}

			tool := deps.CheckBuildTool(rc.BuildTool)
			toolKind := statusOK
			if !tool.Available {
				toolKind = statusError
			}
			fmt.Fprintln(out, renderStatusLine(tool.Name, toolKind, tool.Detail, colorize))

			outputDir := filepath.Dir(cfg.Transport.Output)
			if outputDir == "" || outputDir == "." {
				outputDir, _ = filepath.Abs(".")
			}
			access := deps.CheckDirectoryAccess("Output dir", outputDir)
			kind := statusOK
			if !access.Available {
				kind = statusWarn
			}
			fmt.Fprintln(out, renderStatusLine(access.Name, kind, access.Detail, colorize))

			if cfg.History.Enabled {
				fmt.Fprintln(out, renderStatusLine("History", statusInfo, cfg.History.Path, colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("History", statusInfo, "disabled", colorize))
			}
			return nil
		},
	}
}
