package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(uploadCmd)
}

var uploadCmd = &cobra.Command{
	Use:   "upload <image-file>",
	Short: "Upload an image and print its durable URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imageURL, err := lightxClient.UploadFile(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("error uploading image: %w", err)
		}
		fmt.Println(imageURL)
		return nil
	},
}
