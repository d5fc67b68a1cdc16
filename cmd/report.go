package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerfit/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Work with exported report files",
}

var reportValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check an exported report against the report schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read report: %w", err)
		}
		rep, err := report.Parse(data)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %s, %d%% overall, %s\n",
			rep.Timestamp, rep.OverallConfidence, rep.Recommendation.Title())
		return nil
	},
}

var reportSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for exported reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(report.Schema())
		return err
	},
}

func init() {
	reportCmd.AddCommand(reportValidateCmd)
	reportCmd.AddCommand(reportSchemaCmd)
}
