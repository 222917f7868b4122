// Package sink writes generated source files to their destination.
package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sink receives generated files.
type Sink interface {
	Write(ctx context.Context, name string, data []byte) error
}

// Open returns the sink for target:
//
//	"" or "-"            standard output
//	s3://bucket/prefix   objects in an Amazon S3 bucket
//	anything else        files in a local directory, created if needed
func Open(ctx context.Context, target string) (Sink, error) {
	switch {
	case target == "" || target == "-":
		return NewWriter(os.Stdout), nil
	case strings.HasPrefix(target, "s3://"):
		bucket, prefix, err := parseS3URL(target)
		if err != nil {
			return nil, err
		}
		return NewS3(ctx, bucket, prefix)
	default:
		return NewDir(target)
	}
}

// OutputName returns the name of the Dart file generated from input.
func OutputName(input string) string {
	if input == "" || input == "-" {
		return "main.dart"
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".dart"
}

// Writer writes every file to a single io.Writer, ignoring names.
type Writer struct {
	w io.Writer
}

// NewWriter returns a sink that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write implements Sink.
func (s *Writer) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.w.Write(data)
	return err
}

// Dir writes files into a local directory.
type Dir struct {
	path string
}

// NewDir returns a sink writing into path, creating the directory if it
// does not exist.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Dir{path: path}, nil
}

// Write implements Sink.
func (s *Dir) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.path, filepath.Base(name)), data, 0o644)
}
