package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"a11y-lint/src/controller"
	"a11y-lint/src/model"
	"a11y-lint/src/util"
)

// analyzableExtensions are the file types the analyze command picks up
// when walking a directory.
var analyzableExtensions = map[string]bool{
	".html": true, ".htm": true, ".css": true,
}

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		filePath  string
		dirPath   string
		outputDir string
		format    string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze HTML files for accessibility issues",
		Long:  "Runs every rule family against each line of the given files and reports severity-classified issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := collectPaths(filePath, dirPath, args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("nothing to analyze; pass --file, --dir or file arguments")
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			reports, err := analysisCtrl.AnalyzeFiles(ctx, paths)
			if err != nil {
				util.Error("Analysis failed: %v", err)
				return fmt.Errorf("analysis failed: %w", err)
			}

			reportCtrl := controller.NewReportController(h.cfg)
			totalIssues := 0

			for _, report := range reports {
				totalIssues += report.Summary.TotalIssues

				if outputDir != "" {
					h.cfg.Output.OutputDir = outputDir
					if format != "" {
						h.cfg.Output.Formats = []string{format}
					}
					paths, err := reportCtrl.GenerateReports(report)
					if err != nil {
						return fmt.Errorf("generating reports: %w", err)
					}
					for _, p := range paths {
						fmt.Printf("Report written to %s\n", p)
					}
					continue
				}

				outputFormat := format
				if outputFormat == "" {
					outputFormat = "text"
				}
				output, err := reportCtrl.GenerateToString(report, outputFormat)
				if err != nil {
					// Fallback to raw JSON
					data, _ := json.MarshalIndent(report, "", "  ")
					fmt.Println(string(data))
				} else {
					fmt.Println(output)
				}
			}

			if len(reports) > 1 {
				printHotspots(reports)
			}
			fmt.Fprintf(os.Stderr, "\nAnalysis complete: %d issue(s) across %d file(s)\n", totalIssues, len(reports))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "File to analyze")
	cmd.Flags().StringVarP(&dirPath, "dir", "d", "", "Directory to analyze recursively")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for report files")
	cmd.Flags().StringVar(&format, "format", "", "Output format (text, json, markdown)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 2*time.Minute, "Analysis timeout")

	return cmd
}

// printHotspots lists the analyzed files with issues, worst first.
func printHotspots(reports []*model.AnalysisReport) {
	sorted := make([]*model.AnalysisReport, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Summary.TotalIssues > sorted[j].Summary.TotalIssues
	})

	fmt.Fprintln(os.Stderr, "\nFiles by issue count:")
	for _, r := range sorted {
		if r.Summary.TotalIssues == 0 {
			continue
		}
		fmt.Fprintf(os.Stderr, "  %4d  %s (score %.1f)\n", r.Summary.TotalIssues, r.FilePath, r.Summary.Score)
	}
}

// collectPaths resolves the file/dir flags and positional arguments into
// the list of files to analyze, in deterministic order.
func collectPaths(filePath, dirPath string, args []string) ([]string, error) {
	var paths []string

	if filePath != "" {
		paths = append(paths, filePath)
	}
	paths = append(paths, args...)

	if dirPath != "" {
		err := filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if analyzableExtensions[strings.ToLower(filepath.Ext(path))] {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", dirPath, err)
		}
	}

	return paths, nil
}
