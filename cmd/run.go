package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerfit/internal/app"
	"github.com/abhisek/careerfit/internal/screens"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	bank, err := loadBank()
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	deps := screens.Deps{
		Bank:          bank,
		Scoring:       rt.cfg.Scorer(),
		AnswerKeyName: rt.cfg.Scoring.AnswerKey,
		Reports:       st.ReportRepo(),
		Archive:       rt.cfg.Archive.Enabled,
		ArchiveKeep:   rt.cfg.Archive.Keep,
		Advisor:       newAdvisor(cmd.Context(), st.EventRepo()),
		Log:           rt.log,
	}

	if err := app.Run(deps); err != nil {
		return fmt.Errorf("run assessment: %w", err)
	}
	return nil
}
