package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sant0-9/querylens/cmd/querylens/commands"
	"github.com/sant0-9/querylens/internal/config"
	"github.com/sant0-9/querylens/internal/logx"
	"github.com/sant0-9/querylens/internal/tui"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "querylens",
	Short: "querylens - rephrase a query, then answer it",
	Long: `querylens suggests clearer rephrasings of a query while you type and
answers the one you pick.

Examples:
  querylens                 # Start the terminal UI
  querylens proxy           # Serve completions with the key kept server-side
  querylens version         # Show version information`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional
		_ = godotenv.Load(".env")
		if configDir != "" {
			config.SetDir(configDir)
		}
		return nil
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory holding config.yaml (overrides QUERYLENS_CONFIG_DIR)")

	rootCmd.AddCommand(commands.ProxyCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := commands.LoadConfig()
	if err != nil {
		return err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	logFile, err := logx.OpenFile(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	logx.Init(logx.Options{
		Environment: cfg.Env(),
		Level:       cfg.Log.Level,
		Output:      logFile,
	})

	var app *tui.App
	if config.Exists() {
		app = tui.NewApp(cfg)
	} else {
		logx.Info().Msg("no config file, starting setup")
		app = tui.NewApp(nil)
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		logx.Error().Err(err).Msg("ui exited")
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
