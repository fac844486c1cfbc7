package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	gyazo "github.com/shotput/gyazo-go"
	"github.com/shotput/gyazo-go/internal/archive"
	"github.com/shotput/gyazo-go/internal/config"
	"github.com/shotput/gyazo-go/internal/notify"
	"github.com/shotput/gyazo-go/internal/output"
)

// accessTokenEnv names the fallback environment variable for the token.
const accessTokenEnv = "GYAZO_ACCESS_TOKEN"

// resolveToken returns the access token from the flag or the environment
func resolveToken(flagToken string) (string, error) {
	if flagToken != "" {
		return flagToken, nil
	}
	if token := os.Getenv(accessTokenEnv); token != "" {
		return token, nil
	}
	return "", fmt.Errorf("access token required: set --token or %s", accessTokenEnv)
}

// buildOptions maps option flags onto upload options. Flags the user never
// set are left out entirely.
func buildOptions(cmd *cobra.Command, flags *OptionFlags) (*gyazo.UploadOptions, error) {
	options := &gyazo.UploadOptions{
		RefererURL:   flags.RefererURL,
		App:          flags.App,
		Title:        flags.Title,
		Desc:         flags.Desc,
		CollectionID: flags.Collection,
	}

	if flags.AccessPolicy != "" {
		switch policy := gyazo.AccessPolicy(flags.AccessPolicy); policy {
		case gyazo.AccessPolicyAnyone, gyazo.AccessPolicyOnlyMe:
			options.AccessPolicy = policy
		default:
			return nil, fmt.Errorf("invalid access policy %q: must be anyone or only_me", flags.AccessPolicy)
		}
	}

	// Boolean and numeric flags only count when explicitly set, so that
	// their zero values can still be sent.
	if cmd.Flags().Changed("metadata-public") {
		metadataPublic := flags.MetadataPublic
		options.MetadataIsPublic = &metadataPublic
	}
	if cmd.Flags().Changed("created-at") {
		createdAt := flags.CreatedAt
		options.CreatedAt = &createdAt
	}

	return options, nil
}

// setupArchiveProvider creates and configures an archive provider
func setupArchiveProvider(cfg *ArchiveConfig) (archive.Provider, error) {
	if cfg.Provider == "" {
		return nil, nil
	}

	archiveConf, err := config.BuildWithPrefix(
		"GYAZO_ARCHIVE_CONFIG",
		cfg.Config,
		cfg.ConfigKV,
		cfg.ConfigFile,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build archive config: %w", err)
	}
	if archiveConf == nil {
		archiveConf = make(map[string]any)
	}

	provider, err := archive.NewProvider(cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive provider: %w", err)
	}

	if err := provider.Configure(archiveConf); err != nil {
		return nil, fmt.Errorf("failed to configure archive provider: %w", err)
	}

	return provider, nil
}

// archiveObjectName derives the stored object name from the server-assigned
// image ID and the source file's extension
func archiveObjectName(imageID, sourcePath string) string {
	return imageID + filepath.Ext(sourcePath)
}

// parseNotifyConfig parses webhook flags; returns nil when no URL is set
func parseNotifyConfig(cfg *WebhookConfig) (*notify.Config, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	timeout := 30 * time.Second
	if cfg.Timeout != "" {
		parsed, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid webhook timeout duration: %w", err)
		}
		timeout = parsed
	}

	return &notify.Config{
		URL:       cfg.URL,
		Method:    "POST",
		Timeout:   timeout,
		AuthType:  cfg.AuthType,
		AuthToken: cfg.AuthToken,
	}, nil
}

// createResult creates the CLI result record from an upload result
func createResult(source string, result *gyazo.UploadResult, archiveInfo *output.Archive) *output.Result {
	return &output.Result{
		Source:       source,
		ImageID:      result.ImageID,
		Type:         result.Type,
		CreatedAt:    result.CreatedAt,
		URL:          result.URL,
		PermalinkURL: result.PermalinkURL,
		ThumbURL:     result.ThumbURL,
		Archive:      archiveInfo,
	}
}

// outputJSON marshals and prints the result as JSON
func outputJSON(result *output.Result) error {
	jsonOutput, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON output: %w", err)
	}

	fmt.Println(string(jsonOutput))
	return nil
}

// outputJSONAndNotify sends the result to the webhook when one is configured
// and always prints it to stdout. A webhook failure is recorded in the
// result, never treated as an upload failure.
func outputJSONAndNotify(ctx context.Context, result *output.Result, notifyConfig *notify.Config, verbose bool) error {
	if notifyConfig != nil {
		client := notify.NewClient(notifyConfig)

		if verbose {
			fmt.Fprintf(os.Stderr, "[WEBHOOK] Sending to %s\n", notifyConfig.URL)
		}

		// The webhook payload carries no webhook status fields.
		payload := *result
		payload.WebhookSent = false
		payload.WebhookError = ""

		if err := client.Send(ctx, &payload); err != nil {
			fmt.Fprintf(os.Stderr, "[WEBHOOK] Error: %v\n", err)
			result.WebhookSent = false
			result.WebhookError = err.Error()
		} else {
			result.WebhookSent = true
		}
	}

	return outputJSON(result)
}
