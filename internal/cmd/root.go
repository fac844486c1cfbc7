package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gyazo",
	Short: "Upload images to Gyazo from the command line",
	Long: `Gyazo is a CLI for the Gyazo image upload API. It posts a local image file
to the upload endpoint and prints the resulting image descriptor as JSON.

A copy of the uploaded file can optionally be archived to S3-compatible
object storage, and the result can be posted to a webhook.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		// Credentials may live in a local .env file.
		_ = godotenv.Load()
	})
	rootCmd.AddCommand(uploadCmd)
}
