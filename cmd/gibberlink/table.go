package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"gibberlink/internal/history"
	"gibberlink/internal/transport"
)

func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

// renderProtocolTable lays out the full family:speed grid, one row per token.
func renderProtocolTable(protocols []transport.Protocol) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Token", "Family", "Speed"})
	for _, protocol := range protocols {
		tw.AppendRow(table.Row{
			protocol.Token(),
			string(protocol.Family),
			string(protocol.Speed),
		})
	}
	return tw.Render()
}

const historyMessageWidth = 48

// renderHistoryTable lays out recorded invocations, newest first. Decode rows
// have an empty protocol column; messages are trimmed to keep rows on one line.
func renderHistoryTable(entries []history.Entry) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"When", "Mode", "Protocol", "Vol", "Path", "Result", "Message"})
	for _, entry := range entries {
		tw.AppendRow(table.Row{
			entry.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			entry.Mode,
			entry.Protocol,
			strconv.Itoa(entry.Volume),
			entry.Path,
			entry.Result,
			truncate(entry.Message, historyMessageWidth),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
