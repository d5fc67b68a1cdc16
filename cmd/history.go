package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and manage archived assessment results",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived results, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		items, err := s.ReportRepo().List(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list reports: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(items) == 0 {
			fmt.Fprintln(w, "No archived results.")
			return nil
		}

		fmt.Fprintf(w, "%-36s  %-16s  %7s  %s\n", "ID", "Finished", "Overall", "Recommendation")
		fmt.Fprintln(w, strings.Repeat("─", 90))
		for _, r := range items {
			fmt.Fprintf(w, "%-36s  %-16s  %6d%%  %s\n",
				r.ID,
				r.CreatedAt.Local().Format("2006-01-02 15:04"),
				r.Report.OverallConfidence,
				r.Report.Recommendation.Title())
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one archived result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		r, err := s.ReportRepo().Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get report: %w", err)
		}
		if r == nil {
			return fmt.Errorf("report %s not found", args[0])
		}

		w := cmd.OutOrStdout()
		if asJSON {
			data, err := r.Report.Marshal()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(data))
			return err
		}

		fmt.Fprintf(w, "ID:          %s\n", r.ID)
		fmt.Fprintf(w, "Finished:    %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "Answer key:  %s\n", r.AnswerKey)
		fmt.Fprintf(w, "Answers:     %d\n", len(r.Answers))
		fmt.Fprintln(w)
		printResults(w, r.Report.Results())
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one archived result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		err = s.ReportRepo().Delete(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("report %s not found", args[0])
		}
		if err != nil {
			return fmt.Errorf("delete report: %w", err)
		}
		rt.log.Info("report deleted", zap.String("id", args[0]))
		fmt.Fprintln(cmd.OutOrStdout(), "Deleted", args[0])
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete archived results, optionally keeping the newest",
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetInt("keep")
		if keep < 0 {
			return fmt.Errorf("--keep must not be negative")
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.ReportRepo().Prune(cmd.Context(), keep)
		if err != nil {
			return fmt.Errorf("prune reports: %w", err)
		}
		rt.log.Info("history cleared", zap.Int("keep", keep), zap.Int64("deleted", n))
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d reports\n", n)
		return nil
	},
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of results to show (0 = all)")
	historyShowCmd.Flags().Bool("json", false, "Print the export report as JSON")
	historyClearCmd.Flags().Int("keep", 0, "Number of newest results to keep")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
}
