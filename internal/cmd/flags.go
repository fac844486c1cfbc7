package cmd

import "github.com/spf13/cobra"

// ClientFlags holds client construction flags
type ClientFlags struct {
	Token      string
	TimeoutStr string
	Verbose    bool
}

// OptionFlags holds the flags that map 1:1 to upload options
type OptionFlags struct {
	AccessPolicy   string
	MetadataPublic bool
	RefererURL     string
	App            string
	Title          string
	Desc           string
	CreatedAt      float64
	Collection     string
}

// ArchiveConfig holds archive-related flags
type ArchiveConfig struct {
	Provider   string
	Config     string
	ConfigKV   []string
	ConfigFile string
}

// WebhookConfig holds webhook-related flags
type WebhookConfig struct {
	URL       string
	AuthType  string
	AuthToken string
	Timeout   string
}

// SetupClientFlags adds client flags to a command
func SetupClientFlags(cmd *cobra.Command, flags *ClientFlags) {
	cmd.Flags().StringVar(&flags.Token, "token", "", "Gyazo access token (defaults to GYAZO_ACCESS_TOKEN)")
	cmd.Flags().StringVarP(&flags.TimeoutStr, "timeout", "t", "", "Request timeout duration (e.g., 30s, 2m)")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print upload details on stderr")
}

// SetupOptionFlags adds upload option flags to a command
func SetupOptionFlags(cmd *cobra.Command, flags *OptionFlags) {
	cmd.Flags().StringVar(&flags.AccessPolicy, "access-policy", "", "Image visibility: anyone or only_me")
	cmd.Flags().BoolVar(&flags.MetadataPublic, "metadata-public", false, "Make metadata like URL and title public")
	cmd.Flags().StringVar(&flags.RefererURL, "referer-url", "", "URL of the website captured in the image")
	cmd.Flags().StringVar(&flags.App, "app", "", "Name of the application that captured the image")
	cmd.Flags().StringVar(&flags.Title, "title", "", "Title of the website captured in the image")
	cmd.Flags().StringVar(&flags.Desc, "desc", "", "Comment or description for the image")
	cmd.Flags().Float64Var(&flags.CreatedAt, "created-at", 0, "Creation time of the image in Unix seconds")
	cmd.Flags().StringVar(&flags.Collection, "collection", "", "ID of the collection to add the image to")
}

// SetupArchiveFlags adds archive-related flags to a command
func SetupArchiveFlags(cmd *cobra.Command, config *ArchiveConfig) {
	cmd.Flags().StringVar(&config.Provider, "archive-provider", "", "Archive provider type (e.g., minio)")
	cmd.Flags().StringVar(&config.Config, "archive-config", "", "Archive configuration as JSON string")
	cmd.Flags().StringArrayVar(&config.ConfigKV, "archive-config-kv", nil, "Archive config key=value pairs (can be used multiple times)")
	cmd.Flags().StringVar(&config.ConfigFile, "archive-config-file", "", "Path to JSON file containing archive configuration")
}

// SetupWebhookFlags adds webhook-related flags to a command
func SetupWebhookFlags(cmd *cobra.Command, config *WebhookConfig) {
	cmd.Flags().StringVar(&config.URL, "webhook-url", "", "Webhook URL to send the result to")
	cmd.Flags().StringVar(&config.AuthType, "webhook-auth-type", "none", "Authentication type: none, bearer, api-key")
	cmd.Flags().StringVar(&config.AuthToken, "webhook-auth-token", "", "Authentication token (use with --webhook-auth-type)")
	cmd.Flags().StringVar(&config.Timeout, "webhook-timeout", "30s", "Timeout for the webhook request")
}
