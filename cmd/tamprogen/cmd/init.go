package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/f3rmion/tamprogen/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write config.yaml with the default settings to your config directory.

Edit it afterwards to point api_base at your proverb service, or to change
the speech endpoint, model and recording command.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path, err := writeDefaultConfig(getConfigDir(), force)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Set api_base to your proverb service")
	fmt.Fprintln(out, "  2. Export GROQ_API_KEY to enable voice input")
	fmt.Fprintln(out, "  3. Run 'tamprogen' to start the TUI")
	return nil
}

// writeDefaultConfig saves config.Default into dir and returns the file path.
// An existing file is kept unless force is set.
func writeDefaultConfig(dir string, force bool) (string, error) {
	dir, err := config.EnsureConfigDir(dir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("checking config file: %w", err)
	}

	if err := config.Save(dir, config.Default()); err != nil {
		return "", err
	}
	return path, nil
}
