package output

import (
	"fmt"
	"os"
)

// PrintPreUpload prints upload details before the request is sent
func PrintPreUpload(source, endpoint string, fields map[string]string) {
	fmt.Fprintln(os.Stderr, "========================================")
	fmt.Fprintln(os.Stderr, "Gyazo Upload Details")
	fmt.Fprintln(os.Stderr, "========================================")
	fmt.Fprintf(os.Stderr, "Source:   %s\n", source)
	fmt.Fprintf(os.Stderr, "Endpoint: %s\n", endpoint)
	for name, value := range fields {
		fmt.Fprintf(os.Stderr, "%-9s %s\n", name+":", value)
	}
	fmt.Fprintln(os.Stderr, "----------------------------------------")
}

// PrintPostUpload prints the result after a successful upload
func PrintPostUpload(result *Result) {
	fmt.Fprintln(os.Stderr, "----------------------------------------")
	fmt.Fprintln(os.Stderr, "Upload Results:")
	fmt.Fprintln(os.Stderr, "----------------------------------------")
	fmt.Fprintf(os.Stderr, "Image ID:  %s\n", result.ImageID)
	fmt.Fprintf(os.Stderr, "Type:      %s\n", result.Type)
	fmt.Fprintf(os.Stderr, "URL:       %s\n", result.URL)
	fmt.Fprintf(os.Stderr, "Permalink: %s\n", result.PermalinkURL)
	if result.Archive != nil {
		fmt.Fprintf(os.Stderr, "Archive:   %s (%s)\n", result.Archive.Object, result.Archive.Provider)
	}
	fmt.Fprintln(os.Stderr, "========================================")
}
