// Package archive stores a copy of uploaded images in object storage.
package archive

import (
	"context"
	"io"
)

// Provider defines the interface for archive storage backends
type Provider interface {
	// Store writes content from reader under the given object name
	Store(ctx context.Context, reader io.Reader, objectName string) error

	// Configure sets up the provider with the given configuration
	Configure(config map[string]any) error

	// Name returns the provider name
	Name() string
}
