package cli

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"chart-prophet/internal/api"
	"chart-prophet/internal/classify"
	"chart-prophet/internal/errors"
	"chart-prophet/internal/history"
	"chart-prophet/internal/render"
)

// addHistoryCommands adds the trade-history dashboard commands.
func addHistoryCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Trade history dashboard",
		Long:  "View aggregate statistics and manage trade records.",
	}

	cmd.AddCommand(newHistoryShowCmd(app))
	cmd.AddCommand(newHistoryAddCmd(app))
	cmd.AddCommand(newHistoryEditCmd(app))
	cmd.AddCommand(newHistoryDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("start-date", "", "Filter from date (YYYY-MM-DD)")
	cmd.Flags().String("end-date", "", "Filter to date (YYYY-MM-DD)")
	cmd.Flags().String("indicator", api.FilterAll, "Filter by indicator type (Combined, RSI, MACD, ...)")
	cmd.Flags().String("outcome", api.FilterAll, "Filter by outcome (pending, win, loss)")
}

func filterFromFlags(cmd *cobra.Command) api.Filter {
	startDate, _ := cmd.Flags().GetString("start-date")
	endDate, _ := cmd.Flags().GetString("end-date")
	indicator, _ := cmd.Flags().GetString("indicator")
	outcome, _ := cmd.Flags().GetString("outcome")
	return api.Filter{
		StartDate:     startDate,
		EndDate:       endDate,
		IndicatorType: indicator,
		Outcome:       outcome,
	}
}

func dashboardContext(app *App) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), app.Config.Server.Timeout+10*time.Second)
}

func newHistoryShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the trade history dashboard",
		Long:  "Load aggregate statistics and the filtered trade list, and render counters, charts, and the trade table.",
		Example: `  chart-prophet history show
  chart-prophet history show --start-date 2024-01-01 --outcome win
  chart-prophet history show --indicator RSI --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config.UI.ColorEnabled)
			ctx, cancel := dashboardContext(app)
			defer cancel()

			app.History.SetFilter(filterFromFlags(cmd))

			result, err := app.History.Load(ctx)
			if err != nil {
				output.Error("Error loading data: %s", errors.UserMessage(err))
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"stats":  result.Stats,
					"trades": result.Trades,
				})
			}

			if result.StatsSkipped {
				output.Warning("Statistics unavailable for this filter.")
			} else {
				printStats(output, result)
			}

			if result.TradesSkipped {
				output.Warning("Trade list unavailable for this filter.")
			} else {
				printTrades(output, app, result)
			}
			return nil
		},
	}

	addFilterFlags(cmd)
	return cmd
}

func printStats(output *Output, result *history.LoadResult) {
	counters := render.BuildCounters(result.Stats)
	output.Bold("Statistics")
	output.Printf("  Total Trades:   %d\n", counters.TotalTrades)
	output.Printf("  Winning Trades: %d\n", counters.WinningTrades)
	output.Printf("  Losing Trades:  %d\n", counters.LosingTrades)
	output.Printf("  Win Rate:       %s\n", counters.WinRate)
	output.Println()

	output.Bold("Performance")
	output.Println(render.PerformanceChart(render.BuildPerformanceSeries(result.Stats), output.ColorEnabled()))
	output.Println()

	output.Bold("Outcome Distribution")
	output.Println(render.DistributionChart(render.BuildDistribution(result.Stats), output.ColorEnabled()))
	output.Println()
}

func printTrades(output *Output, app *App, result *history.LoadResult) {
	rows := render.BuildTradeRows(result.Trades, app.Config.UI.DateFormat)
	if len(rows) == 0 {
		output.Info("No trades found. Start analyzing charts to track your performance!")
		return
	}

	output.Bold("Trades")
	table := NewTable(output, "ID", "Date", "Symbol", "Signal", "Indicator", "Outcome", "P/L")
	for _, row := range rows {
		pl := row.ProfitLoss
		if pl != "N/A" {
			if row.Profit {
				pl = output.ColoredString(ColorGreen, pl)
			} else {
				pl = output.ColoredString(ColorRed, pl)
			}
		}
		table.AddRow(
			strconv.FormatInt(row.ID, 10),
			row.Date,
			row.Symbol,
			output.Categorized(row.RecClass, row.Recommendation),
			row.IndicatorType,
			output.Categorized(classify.Category(row.OutcomeClass), row.Outcome),
			pl,
		)
	}
	table.Render()
}

func newHistoryAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new trade",
		Example: `  chart-prophet history add --symbol AAPL --recommendation BUY
  chart-prophet history add --symbol INFY --outcome win --profit-loss 125.50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config.UI.ColorEnabled)
			ctx, cancel := dashboardContext(app)
			defer cancel()

			form := app.History.OpenCreate()
			applyFormFlags(cmd, &form)

			if err := app.History.Save(ctx, form); err != nil {
				output.Error("Error saving trade: %s", errors.UserMessage(err))
				return err
			}
			output.Success("✓ Trade saved")
			return nil
		},
	}

	addFormFlags(cmd)
	return cmd
}

func newHistoryEditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing trade",
		Long:  "Edit a trade from the last loaded list. Fields not given as flags keep their current values.",
		Example: `  chart-prophet history edit 7 --outcome win --profit-loss 250
  chart-prophet history edit 12 --notes "stopped out early"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config.UI.ColorEnabled)
			ctx, cancel := dashboardContext(app)
			defer cancel()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				output.Error("Invalid trade id: %s", args[0])
				return err
			}

			// The edit form is populated from the cached list, so load first.
			if _, err := app.History.Load(ctx); err != nil {
				output.Error("Error loading data: %s", errors.UserMessage(err))
				return err
			}

			form, ok := app.History.OpenEdit(id)
			if !ok {
				output.Warning("Trade %d not found.", id)
				return nil
			}
			applyFormFlags(cmd, &form)

			if err := app.History.Save(ctx, form); err != nil {
				output.Error("Error saving trade: %s", errors.UserMessage(err))
				return err
			}
			output.Success("✓ Trade updated")
			return nil
		},
	}

	addFormFlags(cmd)
	return cmd
}

func newHistoryDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a trade",
		Example: `  chart-prophet history delete 7
  chart-prophet history delete 7 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config.UI.ColorEnabled)
			ctx, cancel := dashboardContext(app)
			defer cancel()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				output.Error("Invalid trade id: %s", args[0])
				return err
			}

			var confirmer history.Confirmer
			if yes, _ := cmd.Flags().GetBool("yes"); yes {
				confirmer = history.ConfirmerFunc(func(string) bool { return true })
			} else {
				confirmer = promptConfirmer{in: cmd.InOrStdin(), out: output}
			}

			if err := app.History.Delete(ctx, id, confirmer); err != nil {
				if errors.Is(err, errors.ErrNotConfirmed) {
					output.Info("Aborted.")
					return nil
				}
				output.Error("Error deleting trade: %s", errors.UserMessage(err))
				return err
			}
			output.Success("✓ Trade deleted")
			return nil
		},
	}

	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}

func addFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("symbol", "", "Trade symbol")
	cmd.Flags().String("recommendation", "", "Recommendation (BUY, SELL, HOLD)")
	cmd.Flags().String("indicator", "", "Indicator type (Combined, RSI, MACD, ...)")
	cmd.Flags().String("outcome", "", "Outcome (pending, win, loss)")
	cmd.Flags().String("entry-price", "", "Entry price")
	cmd.Flags().String("exit-price", "", "Exit price")
	cmd.Flags().String("profit-loss", "", "Profit/loss amount")
	cmd.Flags().String("notes", "", "Free-text notes")
}

func applyFormFlags(cmd *cobra.Command, form *history.TradeForm) {
	set := func(name string, target *string) {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetString(name)
			*target = v
		}
	}
	set("symbol", &form.Symbol)
	set("recommendation", &form.Recommendation)
	set("indicator", &form.IndicatorType)
	set("outcome", &form.Outcome)
	set("entry-price", &form.EntryPrice)
	set("exit-price", &form.ExitPrice)
	set("profit-loss", &form.ProfitLoss)
	set("notes", &form.Notes)
}

// promptConfirmer asks for confirmation on the terminal.
type promptConfirmer struct {
	in  io.Reader
	out *Output
}

func (p promptConfirmer) Confirm(prompt string) bool {
	p.out.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(p.in)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
