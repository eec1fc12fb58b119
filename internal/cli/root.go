package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"chart-prophet/internal/analysis"
	"chart-prophet/internal/api"
	"chart-prophet/internal/config"
	"chart-prophet/internal/history"
	"chart-prophet/internal/logging"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2025-07-01"
)

// App holds the application dependencies.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	API      *api.Client
	Analysis *analysis.Controller
	History  *history.Controller
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	client := api.NewClient(cfg.Server, logger)
	app := &App{
		Config:   cfg,
		Logger:   logger,
		API:      client,
		Analysis: analysis.NewController(client, logger),
		History:  history.NewController(client, logger),
	}

	rootCmd := &cobra.Command{
		Use:   "chart-prophet",
		Short: "Chart Prophet - chart analysis and trade history client",
		Long: `Chart Prophet is a terminal client for the chart analysis service.

Upload a chart image for an AI-backed technical read, and track your trade
history with aggregate statistics, filters, and full record management.

Use 'chart-prophet help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/chart-prophet)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addCoreCommands(rootCmd, app)
	addAnalyzeCommand(rootCmd, app)
	addHistoryCommands(rootCmd, app)

	return rootCmd
}

func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd(app))
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd, app.Config.UI.ColorEnabled)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("Chart Prophet v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config.UI.ColorEnabled)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			output.Bold("Server")
			output.Printf("  Base URL:  %s\n", app.Config.Server.BaseURL)
			output.Printf("  Timeout:   %s\n", app.Config.Server.Timeout)
			output.Printf("  Retry Max: %d\n", app.Config.Server.RetryMax)
			output.Println()
			output.Bold("UI")
			output.Printf("  Color:       %v\n", app.Config.UI.ColorEnabled)
			output.Printf("  Date Format: %s\n", app.Config.UI.DateFormat)
			output.Println()
			output.Bold("Logging")
			output.Printf("  Level: %s\n", app.Config.Logging.Level)
			output.Printf("  File:  %v\n", app.Config.Logging.File)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd, app.Config.UI.ColorEnabled)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config.UI.ColorEnabled)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}
