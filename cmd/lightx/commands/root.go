// Package commands implements the lightx CLI command tree.
package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lightxeditor/lightx-go/config"
	"github.com/lightxeditor/lightx-go/internal/constants"
	"github.com/lightxeditor/lightx-go/internal/logger"
	"github.com/lightxeditor/lightx-go/pkg/api/client"
)

// flag names
const (
	flagAPIKey  = "api-key"
	flagBaseURL = "base-url"
	flagVerbose = "verbose"
)

// annotationLocal marks commands that never talk to the API; they skip client
// initialization and do not need a key.
const annotationLocal = "local"

var (
	// lightxClient is the shared client instance, initialized in PersistentPreRunE.
	lightxClient *client.Client
	// apiKey and baseURL hold flag values; env vars fill the gaps after
	// godotenv.Load() has run.
	apiKey  string
	baseURL string
	verbose bool
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&apiKey, flagAPIKey, "k", "", "LightX API key (env: LIGHTX_API_KEY)")
	RootCmd.PersistentFlags().StringVar(&baseURL, flagBaseURL, "", "LightX API base URL (env: LIGHTX_BASE_URL)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, flagVerbose, "v", false, "Enable debug logging")
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "lightx",
	Short: "lightx - a command line interface for the LightX image AI API",
	Long: `lightx drives LightX image jobs from the command line: upload an image,
submit it to a feature endpoint, poll until the result is ready, and
optionally download the output.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		config.Load()

		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}

		if cmd.Annotations[annotationLocal] == "true" {
			return nil
		}

		// Flag > env var > default precedence for the connection settings.
		opts := config.ClientOptions()
		if cmd.Flags().Changed(flagAPIKey) {
			opts.APIKey = apiKey
		}
		if cmd.Flags().Changed(flagBaseURL) {
			opts.BaseURL = baseURL
		}

		if opts.APIKey == "" {
			return fmt.Errorf("no API key: pass --%s or set %s", flagAPIKey, constants.EnvAPIKey)
		}

		var err error
		lightxClient, err = client.NewClient(opts)
		return err
	},
}
