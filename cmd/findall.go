package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webwinghq/webwing/models"
)

var (
	findallEntityType string
	findallConditions []string
	findallLimit      int
	findallGenerator  string
)

// findallCmd represents the findall command group
var findallCmd = &cobra.Command{
	Use:   "findall",
	Short: "Run entity-discovery searches",
}

var findallCreateCmd = &cobra.Command{
	Use:   "create <objective>",
	Short: "Start an entity-discovery run",
	Long: `Start an entity-discovery run. Match conditions are required and are
given as repeated --condition flags in field:operator:value form, e.g.

  webwing findall create "series B fintech startups" \
    --entity-type company \
    --condition "funding_stage:equals:series_b" \
    --condition "industry:contains:fintech"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conditions, err := parseMatchConditions(findallConditions)
		if err != nil {
			return err
		}

		client, err := newParallelClient()
		if err != nil {
			return err
		}

		run, err := client.CreateFindAllRun(cmd.Context(), models.FindAllRequest{
			Objective:       args[0],
			EntityType:      findallEntityType,
			MatchConditions: conditions,
			Generator:       models.FindAllGenerator(findallGenerator),
			MatchLimit:      findallLimit,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Run %s started (%s)\n", run.FindAllID, run.Status.Status)
		return nil
	},
}

var findallStatusCmd = &cobra.Command{
	Use:   "status <findall-id>",
	Short: "Check an entity-discovery run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newParallelClient()
		if err != nil {
			return err
		}
		run, err := client.GetFindAllRun(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Run %s: %s (active: %t)\n", run.FindAllID, run.Status.Status, run.Status.IsActive)
		if m := run.Status.Metrics; m != nil {
			fmt.Printf("  matches: %d, pages searched: %d, enrichments: %d\n",
				m.MatchesFound, m.PagesSearched, m.EnrichmentsCompleted)
		}
		return nil
	},
}

var findallResultCmd = &cobra.Command{
	Use:   "result <findall-id>",
	Short: "Fetch the matches of an entity-discovery run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newParallelClient()
		if err != nil {
			return err
		}
		result, err := client.GetFindAllResult(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%d matches\n", result.TotalMatches)
		return printJSON(result.Matches)
	},
}

var findallCancelCmd = &cobra.Command{
	Use:   "cancel <findall-id>",
	Short: "Cancel an entity-discovery run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newParallelClient()
		if err != nil {
			return err
		}
		run, err := client.CancelFindAllRun(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Run %s: %s\n", run.FindAllID, run.Status.Status)
		return nil
	},
}

// parseMatchConditions turns field:operator:value strings into typed
// conditions. The value part may itself contain colons.
func parseMatchConditions(raw []string) ([]models.MatchCondition, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("at least one --condition is required (field:operator:value)")
	}
	conditions := make([]models.MatchCondition, 0, len(raw))
	for _, r := range raw {
		parts := strings.SplitN(r, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("invalid condition %q: expected field:operator:value", r)
		}
		conditions = append(conditions, models.MatchCondition{
			Field:    parts[0],
			Operator: parts[1],
			Value:    parts[2],
		})
	}
	return conditions, nil
}

func init() {
	rootCmd.AddCommand(findallCmd)
	findallCmd.AddCommand(findallCreateCmd)
	findallCmd.AddCommand(findallStatusCmd)
	findallCmd.AddCommand(findallResultCmd)
	findallCmd.AddCommand(findallCancelCmd)

	findallCreateCmd.Flags().StringVarP(&findallEntityType, "entity-type", "t", "company", "type of entity to find")
	findallCreateCmd.Flags().StringArrayVar(&findallConditions, "condition", nil, "match condition in field:operator:value form (repeatable)")
	findallCreateCmd.Flags().IntVar(&findallLimit, "match-limit", 50, "maximum matches to find (5-1000)")
	findallCreateCmd.Flags().StringVar(&findallGenerator, "generator", "core", "processing tier: base, core, pro or preview")
}
