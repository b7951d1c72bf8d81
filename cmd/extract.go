package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webwinghq/webwing/models"
)

var (
	extractObjective   string
	extractFullContent bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <url> [url...]",
	Short: "Extract content from URLs",
	Long: `Extract content from one or more URLs. Excerpts are returned by
default; pass --full-content for complete page content. URLs that fail
to extract are reported without failing the whole call.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newParallelClient()
		if err != nil {
			return err
		}

		req := models.ExtractRequest{
			URLs:        args,
			Excerpts:    true,
			FullContent: extractFullContent,
		}
		if extractObjective != "" {
			req.Objective = &extractObjective
		}

		resp, err := client.Extract(cmd.Context(), req)
		if err != nil {
			return err
		}

		for _, r := range resp.Results {
			fmt.Printf("== %s\n", r.URL)
			if r.FullContent != nil {
				fmt.Println(*r.FullContent)
			} else {
				for _, e := range r.Excerpts {
					fmt.Println(e)
				}
			}
			fmt.Println()
		}
		for _, e := range resp.Errors {
			fmt.Printf("FAILED %s: %s\n", e.URL, e.ErrorType)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractObjective, "objective", "o", "", "focus extraction on this objective")
	extractCmd.Flags().BoolVar(&extractFullContent, "full-content", false, "return full page content instead of excerpts")
}
