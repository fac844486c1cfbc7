package gyazo

import "fmt"

// FileError indicates the source image could not be read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("gyazo: read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// TransportError indicates the request never produced an HTTP response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gyazo: request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError indicates the server answered with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte // bounded snippet of the response body
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gyazo: upload failed with status %s", e.Status)
}

// DecodeError indicates the response body did not match the expected schema.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("gyazo: decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
