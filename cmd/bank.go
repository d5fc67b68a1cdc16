package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerfit/internal/questionbank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Print the active question bank as YAML",
	Long: `Print the active question bank as YAML. The output is a valid --bank file,
so it is a starting point for a custom bank.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBank()
		if err != nil {
			return err
		}
		data, err := b.Marshal()
		if err != nil {
			return fmt.Errorf("encode question bank: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a question bank file, or the built-in bank",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			b   *questionbank.Bank
			err error
		)
		if len(args) == 1 {
			b, err = questionbank.Load(args[0])
		} else {
			if err = questionbank.Validate(); err == nil {
				b = questionbank.Default()
			}
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %d questions in %d sections\n", b.Total(), b.SectionCount())
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankValidateCmd)
}
