package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studyflow-app/studyflow/internal/performance"
	"github.com/studyflow-app/studyflow/internal/report"
)

func newReportCommand() *cobra.Command {
	var (
		userID     string
		outputPath string
		exportPDF  bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show a performance analytics report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportPDF && outputPath == "" {
				return fmt.Errorf("--pdf requires --output")
			}

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			engine := performance.NewAnalyticsEngine(performance.NewDBRecordRepository(db))
			summary, err := engine.Summary(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("engine.Summary() > %w", err)
			}

			if outputPath == "" {
				report.Render(cmd.OutOrStdout(), userID, summary)
				return nil
			}

			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("os.Create() > %w", err)
			}
			if err := report.WriteMarkdown(f, userID, summary); err != nil {
				_ = f.Close()
				return fmt.Errorf("report.WriteMarkdown() > %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("f.Close() > %w", err)
			}
			fmt.Printf("wrote %s\n", outputPath)

			if exportPDF {
				pdfPath, err := report.ExportPDF(outputPath)
				if err != nil {
					return fmt.Errorf("report.ExportPDF() > %w", err)
				}
				fmt.Printf("wrote %s\n", pdfPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID to report on")
	cmd.Flags().StringVar(&outputPath, "output", "", "write the report as Markdown to this path instead of stdout")
	cmd.Flags().BoolVar(&exportPDF, "pdf", false, "also convert the Markdown report to PDF")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
