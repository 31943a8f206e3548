package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sahilparate51/resume-relevance/internal/models"
	"sahilparate51/resume-relevance/internal/services"
)

var (
	jdPath    string
	reportDir string

	evaluateCmd = &cobra.Command{
		Use:   "evaluate --jd <job description> <resume>...",
		Short: "Score one or more resumes against a job description and save the results",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runEvaluate,
	}
)

func init() {
	evaluateCmd.Flags().StringVar(&jdPath, "jd", "", "job description file (.pdf or .docx)")
	evaluateCmd.Flags().StringVar(&reportDir, "report-dir", "", "write a feedback PDF per resume into this directory")
	evaluateCmd.MarkFlagRequired("jd")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.log.Sync()

	ctx := context.Background()

	pipeline, err := services.NewPipeline(ctx, e.cfg, e.evalRepo, services.NewMetrics(), e.log)
	if err != nil {
		return err
	}
	defer pipeline.Close()

	session, err := pipeline.Analyzer.LoadJobDescription(services.UploadedDocument{
		Filename: filepath.Base(jdPath),
		Path:     jdPath,
	})
	if err != nil {
		return err
	}

	resumes := make([]services.UploadedDocument, 0, len(args))
	for _, path := range args {
		resumes = append(resumes, services.UploadedDocument{Filename: filepath.Base(path), Path: path})
	}

	results, err := pipeline.Analyzer.Analyze(ctx, session, resumes)
	fmt.Fprintln(cmd.OutOrStdout(), renderResults(results))
	if err != nil {
		return err
	}

	if reportDir != "" {
		if err := writeReports(reportDir, session.JDTitle, results, e.log); err != nil {
			return err
		}
	}
	return nil
}

func writeReports(dir, jdTitle string, results []models.AnalysisResult, log *zap.Logger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	reports := services.NewReportService()
	for _, r := range results {
		if r.Verdict == models.VerdictProcessingError {
			continue
		}

		pdf, err := reports.RenderFeedbackPDF(models.ReportRequest{
			JDTitle:        jdTitle,
			ResumeFilename: r.ResumeFilename,
			Score:          r.Score,
			Verdict:        r.Verdict,
			MissingSkills:  r.MissingSkills,
			Feedback:       r.Feedback,
		})
		if err != nil {
			return err
		}

		path := filepath.Join(dir, reports.ReportFilename(r.ResumeFilename))
		if err := os.WriteFile(path, pdf, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		log.Info("📥 Feedback report written", zap.String("path", path))
	}
	return nil
}
