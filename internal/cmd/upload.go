package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	gyazo "github.com/shotput/gyazo-go"
	"github.com/shotput/gyazo-go/internal/output"
)

var (
	uploadClientFlags  ClientFlags
	uploadOptionFlags  OptionFlags
	uploadArchiveFlags ArchiveConfig
	uploadWebhookFlags WebhookConfig
)

var uploadCmd = &cobra.Command{
	Use:   "upload [flags] <file>",
	Short: "Upload an image file to Gyazo",
	Long: `Upload an image file to the Gyazo upload endpoint and print the resulting
image descriptor as a single JSON line on stdout.

The access token is read from --token or the GYAZO_ACCESS_TOKEN environment
variable (a local .env file is honored).`,
	Example: `  gyazo upload screenshot.png
  gyazo upload --title "Build graph" --desc "nightly CI" chart.png
  gyazo upload --access-policy only_me --collection abc123 secret.png
  gyazo upload --archive-provider minio --archive-config-kv bucket=screens shot.png`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	source := args[0]

	token, err := resolveToken(uploadClientFlags.Token)
	if err != nil {
		return err
	}

	var timeout time.Duration
	if uploadClientFlags.TimeoutStr != "" {
		timeout, err = time.ParseDuration(uploadClientFlags.TimeoutStr)
		if err != nil {
			return fmt.Errorf("invalid timeout duration: %w", err)
		}
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive")
		}
	}

	options, err := buildOptions(cmd, &uploadOptionFlags)
	if err != nil {
		return err
	}

	// Fail on bad archive or webhook configuration before anything is sent.
	provider, err := setupArchiveProvider(&uploadArchiveFlags)
	if err != nil {
		return err
	}
	notifyConfig, err := parseNotifyConfig(&uploadWebhookFlags)
	if err != nil {
		return err
	}

	client, err := gyazo.NewClient(&gyazo.Config{
		AccessToken: token,
		Timeout:     timeout,
	})
	if err != nil {
		return err
	}

	if uploadClientFlags.Verbose {
		output.PrintPreUpload(source, gyazo.DefaultUploadURL, optionSummary(options))
	}

	result, err := client.Upload(cmd.Context(), source, options)
	if err != nil {
		return err
	}

	var archiveInfo *output.Archive
	if provider != nil {
		objectName := archiveObjectName(result.ImageID, source)

		file, err := os.Open(source)
		if err != nil {
			return fmt.Errorf("failed to open %s for archiving: %w", source, err)
		}
		storeErr := provider.Store(cmd.Context(), file, objectName)
		_ = file.Close()
		if storeErr != nil {
			return fmt.Errorf("failed to archive %s: %w", source, storeErr)
		}

		archiveInfo = &output.Archive{
			Provider: provider.Name(),
			Object:   objectName,
		}
		if uploadClientFlags.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Archived to: %s\n", objectName)
		}
	}

	jsonResult := createResult(source, result, archiveInfo)

	if uploadClientFlags.Verbose {
		output.PrintPostUpload(jsonResult)
	}

	return outputJSONAndNotify(cmd.Context(), jsonResult, notifyConfig, uploadClientFlags.Verbose)
}

// optionSummary renders the populated options for verbose output
func optionSummary(options *gyazo.UploadOptions) map[string]string {
	summary := make(map[string]string)
	if options.AccessPolicy != "" {
		summary["Policy"] = string(options.AccessPolicy)
	}
	if options.Title != "" {
		summary["Title"] = options.Title
	}
	if options.App != "" {
		summary["App"] = options.App
	}
	if options.CollectionID != "" {
		summary["Collection"] = options.CollectionID
	}
	return summary
}

func init() {
	SetupClientFlags(uploadCmd, &uploadClientFlags)
	SetupOptionFlags(uploadCmd, &uploadOptionFlags)
	SetupArchiveFlags(uploadCmd, &uploadArchiveFlags)
	SetupWebhookFlags(uploadCmd, &uploadWebhookFlags)
}
