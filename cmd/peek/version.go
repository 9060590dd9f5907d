package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"peek/internal/version"
)

const versionTagline = "just the first taste"

// buildInfo is the cleaned-up view of the ldflags-settable metadata.
type buildInfo struct {
	Colored string
	Plain   string
	Commit  string
	Message string
	Date    string
}

type metadataRow struct {
	label string
	value string
}

var (
	versionFormat      string
	versionShowHash    bool
	versionShowMessage bool
	versionShowDate    bool
	versionShowFull    bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowHash, "hash", false, "include git commit hash")
	versionCmd.Flags().BoolVar(&versionShowMessage, "message", false, "include git commit message")
	versionCmd.Flags().BoolVar(&versionShowDate, "date", false, "include build timestamp")
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show peek build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := collectBuildInfo()
		rows := metadataRows(info,
			versionShowHash || versionShowFull,
			versionShowMessage || versionShowFull,
			versionShowDate || versionShowFull)

		switch strings.ToLower(versionFormat) {
		case "json":
			return renderVersionJSON(cmd.OutOrStdout(), info, rows)
		case "pretty":
			renderVersionPretty(cmd.OutOrStdout(), info, rows)
			return nil
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
	},
}

func collectBuildInfo() buildInfo {
	plain := strings.TrimSpace(version.Plain)
	if plain == "" {
		plain = "dev"
	}
	colored := strings.TrimSpace(version.Version)
	if colored == "" {
		colored = plain
	}
	return buildInfo{
		Colored: colored,
		Plain:   plain,
		Commit:  strings.TrimSpace(version.GitCommit),
		Message: strings.TrimSpace(version.GitMessage),
		Date:    strings.TrimSpace(version.BuildDate),
	}
}

func metadataRows(info buildInfo, withHash, withMessage, withDate bool) []metadataRow {
	var rows []metadataRow
	if withHash {
		rows = append(rows, metadataRow{"commit", valueOrUnknown(info.Commit)})
	}
	if withMessage {
		rows = append(rows, metadataRow{"message", valueOrUnknown(info.Message)})
	}
	if withDate {
		rows = append(rows, metadataRow{"built", valueOrUnknown(info.Date)})
	}
	return rows
}

func renderVersionPretty(out io.Writer, info buildInfo, rows []metadataRow) {
	fmt.Fprintf(out, "peek %s — %s\n", info.Colored, versionTagline)
	if len(rows) == 0 {
		fmt.Fprintln(out, "set --hash, --message, --date, or --full for the rest of the build story")
		return
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%-8s %s\n", row.label+":", row.value)
	}
}

func renderVersionJSON(out io.Writer, info buildInfo, rows []metadataRow) error {
	// The machine-readable form carries the uncolored version.
	payload := map[string]string{
		"tool":    "peek",
		"version": info.Plain,
		"tagline": versionTagline,
	}
	for _, row := range rows {
		payload[row.label] = row.value
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
