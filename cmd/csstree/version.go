package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func getVersion() string {
	if Version != "dev" {
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			w := cmd.OutOrStdout()
			switch format {
			case "json":
				out, err := json.MarshalIndent(map[string]string{
					"version":   getVersion(),
					"goVersion": runtime.Version(),
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("error marshaling version info: %w", err)
				}
				fmt.Fprintln(w, string(out))
			default:
				fmt.Fprintf(w, "csstree %s\n", getVersion())
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
	return cmd
}
