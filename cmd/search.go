package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webwinghq/webwing/models"
)

var (
	searchQueries    []string
	searchMaxResults int
	searchMode       string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [objective]",
	Short: "Run a web search",
	Long: `Run a web search against the remote API. Provide a natural language
objective as the argument, explicit queries via --query, or both.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && len(searchQueries) == 0 {
			return fmt.Errorf("provide an objective argument or at least one --query")
		}

		client, err := newParallelClient()
		if err != nil {
			return err
		}

		req := models.SearchRequest{SearchQueries: searchQueries}
		if len(args) > 0 {
			req.Objective = &args[0]
		}
		if searchMaxResults > 0 {
			req.MaxResults = &searchMaxResults
		}
		if searchMode != "" {
			mode := models.SearchMode(searchMode)
			req.Mode = &mode
		}

		resp, err := client.Search(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Search %s returned %d results\n\n", resp.SearchID, len(resp.Results))
		for _, r := range resp.Results {
			title := r.URL
			if r.Title != nil {
				title = *r.Title
			}
			fmt.Printf("%s\n  %s\n", title, r.URL)
			for _, e := range r.Excerpts {
				fmt.Printf("  > %s\n", e)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringArrayVarP(&searchQueries, "query", "q", nil, "explicit search query (repeatable)")
	searchCmd.Flags().IntVarP(&searchMaxResults, "max-results", "n", 0, "maximum number of results (1-100)")
	searchCmd.Flags().StringVarP(&searchMode, "mode", "m", "", "search mode: one-shot or agentic")
}
