package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webwinghq/webwing/models"
)

var (
	monitorCadence    string
	monitorWebhookURL string
)

// monitorCmd represents the monitor command group
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Manage recurring web monitors",
}

var monitorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List monitors",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newParallelClient()
		if err != nil {
			return err
		}
		monitors, err := client.ListMonitors(cmd.Context())
		if err != nil {
			return err
		}
		if len(monitors) == 0 {
			fmt.Println("No monitors.")
			return nil
		}
		for _, m := range monitors {
			fmt.Printf("%s  [%s, %s]  %s\n", m.MonitorID, m.Status, m.Cadence, m.Query)
		}
		return nil
	},
}

var monitorCreateCmd = &cobra.Command{
	Use:   "create <query>",
	Short: "Create a monitor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newParallelClient()
		if err != nil {
			return err
		}

		req := models.CreateMonitorRequest{
			Query:   args[0],
			Cadence: models.MonitorCadence(monitorCadence),
		}
		if monitorWebhookURL != "" {
			req.Webhook = &models.WebhookConfig{URL: monitorWebhookURL}
		}

		monitor, err := client.CreateMonitor(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Created %s monitor %s\n", monitor.Cadence, monitor.MonitorID)
		return nil
	},
}

var monitorDeleteCmd = &cobra.Command{
	Use:   "delete <monitor-id>",
	Short: "Delete a monitor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newParallelClient()
		if err != nil {
			return err
		}
		if err := client.DeleteMonitor(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted monitor %s\n", args[0])
		return nil
	},
}

var monitorEventsCmd = &cobra.Command{
	Use:   "events <monitor-id>",
	Short: "List events produced by a monitor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newParallelClient()
		if err != nil {
			return err
		}
		events, err := client.ListMonitorEvents(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No events.")
			return nil
		}
		for _, e := range events {
			fmt.Printf("%s  %s  %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.EventType, e.EventID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	monitorCmd.AddCommand(monitorListCmd)
	monitorCmd.AddCommand(monitorCreateCmd)
	monitorCmd.AddCommand(monitorDeleteCmd)
	monitorCmd.AddCommand(monitorEventsCmd)

	monitorCreateCmd.Flags().StringVar(&monitorCadence, "cadence", "daily", "execution cadence: hourly, daily or weekly")
	monitorCreateCmd.Flags().StringVar(&monitorWebhookURL, "webhook-url", "", "webhook URL to notify on new events")
}
