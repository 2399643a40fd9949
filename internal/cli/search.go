package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"amphi/internal/domain"
)

func newSearchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Run one search and print the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			applyColor(cfg)

			query := strings.Join(args, " ")
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Search.Latency.Duration+cfg.Search.Timeout.Duration)
			defer cancel()

			results, err := newBackend(cfg).Query(ctx, query)
			if err != nil {
				return fmt.Errorf("search %q: %w", query, err)
			}

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No results found")
				return nil
			}
			fmt.Fprintln(out, renderResults(results))
			return nil
		},
	}
}

// renderResults lays the results out as a table
func renderResults(results []domain.SearchResult) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "TYPE", "CATEGORY", "URL").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, r := range results {
		t.Row(r.ID, r.Title, string(r.Type), r.Category, r.URL)
	}

	count := fmt.Sprintf("%d results", len(results))
	if len(results) == 1 {
		count = "1 result"
	}
	return t.String() + "\n" + count
}
