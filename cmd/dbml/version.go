package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dbml/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show dbml build information",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case "pretty":
		_, err = fmt.Fprintln(cmd.OutOrStdout(), version.Line(s.color))
		return err
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(versionPayload{
			Tool:      "dbml",
			Version:   version.Version,
			GitCommit: version.GitCommit,
			BuildDate: version.BuildDate,
		})
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}
