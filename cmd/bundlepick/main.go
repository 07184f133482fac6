package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bundlepick/bundlepick/cmd/bundlepick/tui"
	"github.com/bundlepick/bundlepick/internal/config"
	"github.com/bundlepick/bundlepick/internal/ignore"
	"github.com/bundlepick/bundlepick/internal/logging"
	"github.com/bundlepick/bundlepick/internal/stats"
	"github.com/bundlepick/bundlepick/internal/tools"
)

var version = "0.1.0"

var (
	flagRoot       string
	flagBundler    string
	flagModel      string
	flagIgnoreFile string
	flagDebug      bool
)

var rootCmd = &cobra.Command{
	Use:   "bundlepick",
	Short: "Pick files interactively and feed them to a code bundler",
	Long:  "bundlepick browses a directory tree, lets you select files with live line/token/char stats, and hands the selection to a bundling tool such as code2prompt.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDebug {
			if logPath := logging.Setup(true); logPath != "" {
				defer fmt.Fprintf(os.Stderr, "debug log: %s\n", logPath)
			}
		}

		cfg := config.LoadFile()
		if flagBundler != "" {
			cfg.Bundler.Command = flagBundler
		}
		if flagModel != "" {
			cfg.Model = flagModel
		}
		if flagIgnoreFile != "" {
			cfg.IgnoreFile = flagIgnoreFile
		}

		root, err := filepath.Abs(flagRoot)
		if err != nil {
			return fmt.Errorf("resolving root: %w", err)
		}

		// The bundler must resolve before any UI is drawn; pager and
		// alternate selector are optional.
		caps, err := tools.Probe(cfg.Bundler.Command, cfg.Pager, cfg.Ranger)
		if err != nil {
			return err
		}

		model, err := tui.NewModel(tui.Options{
			Root:    root,
			Config:  cfg,
			Caps:    caps,
			Matcher: ignore.Load(root, cfg.IgnoreFile),
			Counter: stats.NewCounter(cfg.Model),
		})
		if err != nil {
			return fmt.Errorf("reading %s: %w", root, err)
		}

		final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}

		m := final.(tui.Model)
		if msg := m.ExitMessage(); msg != "" {
			fmt.Println(msg)
		}
		return m.Err()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bundlepick %s\n", version)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagRoot, "root", "r", ".", "directory to browse")
	rootCmd.Flags().StringVar(&flagBundler, "bundler", "", "bundler command (overrides config)")
	rootCmd.Flags().StringVar(&flagModel, "model", "", "tokenizer model for token counts (overrides config)")
	rootCmd.Flags().StringVar(&flagIgnoreFile, "ignore-file", "", "ignore file name (overrides config)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "write a debug log")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
