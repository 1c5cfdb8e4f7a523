package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lightxeditor/lightx-go/pkg/api/routes"
)

func init() {
	statusCmd.Flags().StringP("order-id", "i", "", "Order ID to check")
	statusCmd.Flags().Bool("v2", false, "Poll the v2 order-status endpoint (for v2 feature jobs)")
	statusCmd.Flags().BoolP("wait", "w", false, "Poll until the order reaches a terminal state")
	_ = statusCmd.MarkFlagRequired("order-id")

	RootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the status of a submitted order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		orderID, _ := cmd.Flags().GetString("order-id")
		useV2, _ := cmd.Flags().GetBool("v2")
		wait, _ := cmd.Flags().GetBool("wait")

		statusPath := routes.OrderStatusV1
		if useV2 {
			statusPath = routes.OrderStatusV2
		}

		if wait {
			result, werr := lightxClient.AwaitCompletion(cmd.Context(), statusPath, orderID)
			if werr != nil {
				return fmt.Errorf("error awaiting order %s: %w", orderID, werr)
			}
			return printJSON(result)
		}

		result, err := lightxClient.CheckOrder(cmd.Context(), statusPath, orderID)
		if err != nil {
			return fmt.Errorf("error checking order %s: %w", orderID, err)
		}
		return printJSON(result)
	},
}

func printJSON(v interface{}) error {
	prettyJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	fmt.Println(string(prettyJSON))
	return nil
}
