package cmd

import (
	"fmt"
	"strings"

	"github.com/f3rmion/tamprogen/internal/proverb"
	"github.com/spf13/cobra"
)

var (
	filterType    string
	filterKeyword string
	filterHTML    bool
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "List proverbs by type and keyword",
	Long: `List proverbs from the service, optionally narrowed by type and keyword.

Types: All, Literal, Figurative

Example:
  tamprogen filter --type Figurative
  tamprogen filter --keyword யானை`,
	Args: cobra.NoArgs,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVarP(&filterType, "type", "t", string(proverb.CategoryAll), "proverb type (All, Literal, Figurative)")
	filterCmd.Flags().StringVarP(&filterKeyword, "keyword", "k", "", "keyword to match")
	filterCmd.Flags().BoolVar(&filterHTML, "html", false, "print the rendered HTML fragment")
	rootCmd.AddCommand(filterCmd)
}

func parseCategory(s string) (proverb.Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return proverb.CategoryAll, nil
	}
	for _, c := range proverb.Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown type %q (want All, Literal or Figurative)", s)
}

func runFilter(cmd *cobra.Command, args []string) error {
	category, err := parseCategory(filterType)
	if err != nil {
		return err
	}

	s, err := newStack(stderrLogger())
	if err != nil {
		return err
	}

	s.fields.SetFilter(category, filterKeyword)
	state := s.filter.Run(cmd.Context())
	return printView(cmd.OutOrStdout(), s.board, proverb.PipelineFilter, state, filterHTML)
}
