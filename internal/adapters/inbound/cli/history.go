package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dirqc/dirqc/internal/adapters/outbound/fsprobe"
	"github.com/dirqc/dirqc/internal/adapters/outbound/gitinfo"
	"github.com/dirqc/dirqc/internal/adapters/outbound/history"
	"github.com/dirqc/dirqc/internal/application"
)

func newHistoryCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history <base-dir>",
		Short: "List recorded QC runs for a delivery directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewQCService(fsprobe.New(), history.New(), gitinfo.New())

			entries, err := svc.History(args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recorded QC runs.")
				return nil
			}

			for _, e := range entries {
				verdict := "FAIL"
				if e.Passed {
					verdict = "PASS"
				}
				line := fmt.Sprintf("%s  %-5s %s  type=%s", e.Timestamp.Format("2006-01-02 15:04:05"), verdict, e.BasePath, e.TestType)
				if e.CommitHash != "" {
					// Hand-edited history files may carry abbreviated hashes.
					hash := e.CommitHash
					if len(hash) > 12 {
						hash = hash[:12]
					}
					line += "  commit=" + hash
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")

	return cmd
}
