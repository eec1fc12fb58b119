package cli

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"chart-prophet/internal/errors"
	"chart-prophet/internal/render"
)

// addAnalyzeCommand adds the chart upload-and-analyze command.
func addAnalyzeCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "analyze <image>",
		Short: "Upload a chart image for analysis",
		Long: `Upload a chart screenshot to the analysis service and render the verdict:
overall recommendation, trend direction, RSI/MACD readings, support and
resistance levels, entry/exit points, and risk factors.`,
		Example: `  chart-prophet analyze chart.png
  chart-prophet analyze ~/screenshots/nifty-daily.jpg --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config.UI.ColorEnabled)
			ctx, cancel := context.WithTimeout(context.Background(), app.Config.Server.Timeout+10*time.Second)
			defer cancel()

			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				output.Error("Cannot read %s: %v", path, err)
				return err
			}

			if err := app.Analysis.Select(filepath.Base(path), data); err != nil {
				output.Error("%v", errors.UserMessage(err))
				return err
			}

			output.Info("Analyzing %s...", filepath.Base(path))

			result, err := app.Analysis.Submit(ctx)
			if err != nil {
				// The staged file survives an error; the user can rerun.
				output.Error("Error analyzing chart: %s", errors.UserMessage(err))
				return err
			}

			if output.IsJSON() {
				return output.JSON(result)
			}
			printReport(output, render.BuildReport(result))
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}

func printReport(output *Output, report render.Report) {
	output.Println()
	output.Bold("Recommendation")
	output.Printf("  %s  (confidence: %s)\n",
		output.Categorized(report.Recommendation.Category, report.Recommendation.Text),
		report.Confidence)
	output.Printf("  Trend: %s\n", output.Categorized(report.Trend.Category, report.Trend.Text))
	output.Println()

	output.Bold("Indicators")
	output.Printf("  RSI:  %s  %s\n",
		output.Categorized(report.RSI.Badge.Category, report.RSI.Badge.Text),
		report.RSI.Description)
	output.Printf("  MACD: %s  %s\n",
		output.Categorized(report.MACD.Badge.Category, report.MACD.Badge.Text),
		report.MACD.Description)
	output.Println()

	for _, slot := range []render.ListSlot{
		report.Support, report.Resistance,
		report.EntryPoints, report.ExitPoints,
		report.Observations, report.RiskFactors,
	} {
		output.Bold(slot.Title)
		for _, item := range slot.Items {
			output.Printf("  • %s\n", item)
		}
		output.Println()
	}

	if len(report.Fibonacci) > 0 {
		output.Bold("Fibonacci Levels")
		table := NewTable(output, "Level", "Significance")
		for _, fib := range report.Fibonacci {
			table.AddRow(fib.Level, fib.Significance)
		}
		table.Render()
		output.Println()
	}

	output.Bold("Summary")
	output.Printf("  %s\n", report.Summary)
}
