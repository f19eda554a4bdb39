package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	toolconfig "github.com/dirqc/dirqc/internal/adapters/outbound/config"
	"github.com/dirqc/dirqc/internal/adapters/outbound/tui"
	"github.com/dirqc/dirqc/internal/domain"
)

func newExpectedCmd() *cobra.Command {
	var (
		testType   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "expected",
		Short: "Print the expected directory structure and files",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := domain.ParseTestType(testType)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(domain.DescribeExpected(t))
			}

			cfg, err := toolconfig.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderExpected(t, cfg.ASCII))
			return nil
		},
	}

	cmd.Flags().StringVarP(&testType, "type", "t", "SB", "Test type to describe")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the expected layout as JSON")

	return cmd
}
