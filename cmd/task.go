package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/webwinghq/webwing/models"
)

var (
	taskProcessor string
	taskNoWait    bool
)

// taskCmd represents the task command group
var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Submit and inspect deep-research task runs",
}

var taskRunCmd = &cobra.Command{
	Use:   "run <input>",
	Short: "Submit a task run",
	Long: `Submit a deep-research task run. The command blocks until the run
finishes and prints the result; pass --no-wait to print the run ID and
return immediately.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newParallelClient()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		run, err := client.CreateTaskRun(ctx, models.TaskRunRequest{
			Processor: taskProcessor,
			Input:     args[0],
		})
		if err != nil {
			return err
		}
		fmt.Printf("Run %s created (%s)\n", run.RunID, run.Status)

		if taskNoWait {
			return nil
		}

		run, err = client.WaitForTaskRun(ctx, run.RunID, waitOptionsFromConfig())
		if err != nil {
			return err
		}
		fmt.Printf("Run %s finished: %s\n", run.RunID, run.Status)

		if run.Status == models.TaskRunCompleted {
			result, err := client.GetTaskRunResult(ctx, run.RunID)
			if err != nil {
				return err
			}
			return printJSON(result)
		}
		if run.Error != nil {
			fmt.Printf("Error: %s (%s)\n", run.Error.Message, run.Error.Code)
		}
		return nil
	},
}

var taskStatusCmd = &cobra.Command{
	Use:   "status <run-id>",
	Short: "Check a task run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newParallelClient()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		run, err := client.GetTaskRun(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Run %s: %s (active: %t, processor: %s)\n", run.RunID, run.Status, run.IsActive, run.Processor)

		if run.Status == models.TaskRunCompleted {
			result, err := client.GetTaskRunResult(ctx, run.RunID)
			if err != nil {
				return err
			}
			return printJSON(result)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskRunCmd)
	taskCmd.AddCommand(taskStatusCmd)

	taskRunCmd.Flags().StringVarP(&taskProcessor, "processor", "p", "base", "processor tier to run the task on")
	taskRunCmd.Flags().BoolVar(&taskNoWait, "no-wait", false, "return immediately instead of waiting for completion")
}

// printJSON renders a value as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
