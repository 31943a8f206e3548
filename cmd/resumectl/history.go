package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sahilparate51/resume-relevance/internal/services"
)

var (
	exportOut string

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "Show every saved evaluation, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.log.Sync()

			evals, err := e.evalRepo.FindAll(context.Background())
			if err != nil {
				return err
			}

			if len(evals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "📭 No evaluations found yet.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderHistory(services.HistoryEntries(evals)))
			return nil
		},
	}

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the evaluation history to an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.log.Sync()

			evals, err := e.evalRepo.FindAll(context.Background())
			if err != nil {
				return err
			}

			workbook, err := services.NewExportService().HistoryWorkbook(evals)
			if err != nil {
				return err
			}

			if err := os.WriteFile(exportOut, workbook, 0644); err != nil {
				return fmt.Errorf("failed to write workbook: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported %d evaluations to %s\n", len(evals), exportOut)
			return nil
		},
	}
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "evaluations.xlsx", "output workbook path")
}
