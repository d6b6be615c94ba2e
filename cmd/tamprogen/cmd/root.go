// Package cmd contains all CLI commands for tamprogen.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/tamprogen/internal/config"
	"github.com/f3rmion/tamprogen/internal/logging"
	"github.com/f3rmion/tamprogen/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tamprogen",
	Short: "Tamil Proverb Generator - look up and explain Tamil proverbs",
	Long: `tamprogen is a client for a Tamil proverb service.

It can:
  - Search for a proverb and show its transliteration, meanings and examples
  - Fall back to an AI-generated explanation when no match exists
  - Filter the collection by Literal/Figurative type and keyword
  - Take the proverb by voice (ta-IN)

Running 'tamprogen' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/tamprogen)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("api-base", "", "proverb service base URL (overrides config)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("api_base", rootCmd.PersistentFlags().Lookup("api-base"))
	viper.BindEnv("groq_api_key", "GROQ_API_KEY", "TAMPROGEN_GROQ_API_KEY")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("TAMPROGEN")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// runTUI launches the unified TUI application.
func runTUI(cmd *cobra.Command, args []string) error {
	configDir, err := config.EnsureConfigDir(getConfigDir())
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := logging.OpenFile(configDir)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := logging.New(logFile, viper.GetBool("verbose"))

	s, err := newStack(log)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		tui.NewApp(cmd.Context(), s.tuiOptions()),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
