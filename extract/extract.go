/*
Package extract provides the subject-extraction capability used to remove
sprite backgrounds.

An Extractor takes an encoded image and returns an encoded image of the same
content with the alpha channel populated so that the background is
transparent. The packer makes no other assumption about the result. Adapters
are provided for a rembg-compatible HTTP server and for any program that
filters an image from stdin to stdout, and Cache memoizes either of them in a
SQLite database.
*/
package extract

import "context"

// Extractor isolates the foreground subject of an encoded image
type Extractor interface {
	Extract(ctx context.Context, b []byte) ([]byte, error)
}

// Func adapts an ordinary function to the Extractor interface
type Func func(ctx context.Context, b []byte) ([]byte, error)

// Extract calls f(ctx, b)
func (f Func) Extract(ctx context.Context, b []byte) ([]byte, error) {
	return f(ctx, b)
}
