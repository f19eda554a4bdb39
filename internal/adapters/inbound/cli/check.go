package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	toolconfig "github.com/dirqc/dirqc/internal/adapters/outbound/config"
	"github.com/dirqc/dirqc/internal/adapters/outbound/fsprobe"
	"github.com/dirqc/dirqc/internal/adapters/outbound/gitinfo"
	"github.com/dirqc/dirqc/internal/adapters/outbound/history"
	"github.com/dirqc/dirqc/internal/adapters/outbound/tui"
	"github.com/dirqc/dirqc/internal/application"
	"github.com/dirqc/dirqc/internal/domain"
)

func newCheckCmd() *cobra.Command {
	var (
		testType   string
		jsonOutput bool
		noHistory  bool
	)

	cmd := &cobra.Command{
		Use:   "check <base-dir>",
		Short: "Validate a delivery directory against the QC contract",
		Long:  "Check that a delivery directory contains the required subdirectories and files for its test type. Exits non-zero when QC fails.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				printExpectedHelp(cmd)
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := toolconfig.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if testType == "" {
				testType = cfg.DefaultTestType
			}

			svc := application.NewQCService(fsprobe.New(), history.New(), gitinfo.New())

			result, err := svc.Run(args[0], testType)
			if err != nil {
				printExpectedHelp(cmd)
				return err
			}

			if !noHistory && cfg.HistoryEnabled() {
				// Bookkeeping only: a history failure must not change the verdict.
				if err := svc.Record(result); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
				}
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(result, cfg.ASCII))
			}

			if !result.Passed {
				return fmt.Errorf("QC failed: %s", result.FailureSummary())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&testType, "type", "t", "", "Test type: SB for the extended rule set, anything else for the basic set")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the validation result as JSON")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording this run in the directory's QC history")

	return cmd
}

// printExpectedHelp shows usage and the expected delivery layout when the
// invocation itself is invalid, so operators see what a conforming call and
// directory look like.
func printExpectedHelp(cmd *cobra.Command) {
	ascii := false
	if cfg, err := toolconfig.New().Load("."); err == nil {
		ascii = cfg.ASCII
	}
	fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
	fmt.Fprint(cmd.ErrOrStderr(), tui.RenderExpected(domain.TestTypeSB, ascii))
}
