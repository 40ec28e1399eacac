// Package output writes generated Markdown to its destination.
//
// A destination is one of:
//
//	"" or "-"          standard output
//	s3://bucket/key    an S3 object
//	anything else      a file path, replaced atomically
package output

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/natefinch/atomic"

	"github.com/readmecraft/readmecraft/internal/errors"
)

// Stdout is the destination naming standard output.
const Stdout = "-"

// ContentType is sent with objects published to S3.
const ContentType = "text/markdown; charset=utf-8"

// FileMode is the mode of files Write creates. Existing files keep theirs.
const FileMode os.FileMode = 0644

// PutObjectAPI is the part of the S3 client used for publishing.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Writer writes content to destinations.
type Writer struct {
	stdout    io.Writer
	newClient func(ctx context.Context) (PutObjectAPI, error)
	logger    *slog.Logger
}

// Option configures a Writer.
type Option func(*Writer)

// WithS3Client publishes through client instead of a client built from the
// default AWS configuration.
func WithS3Client(client PutObjectAPI) Option {
	return func(w *Writer) {
		w.newClient = func(context.Context) (PutObjectAPI, error) { return client, nil }
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) {
		w.logger = logger
	}
}

// New creates a Writer printing standard-output destinations to stdout.
func New(stdout io.Writer, opts ...Option) *Writer {
	w := &Writer{
		stdout:    stdout,
		newClient: defaultClient,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func defaultClient(ctx context.Context) (PutObjectAPI, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

// IsStdout reports whether dest names standard output.
func IsStdout(dest string) bool {
	return dest == "" || dest == Stdout
}

// ParseS3 splits an s3://bucket/key destination.
func ParseS3(dest string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(dest, "s3://")
	if !found {
		return "", "", false
	}
	bucket, key, _ = strings.Cut(rest, "/")
	return bucket, key, true
}

// Write writes content to dest.
func (w *Writer) Write(ctx context.Context, dest, content string) error {
	switch {
	case IsStdout(dest):
		if _, err := io.WriteString(w.stdout, content); err != nil {
			return errors.New("E005").WithPath("stdout").Wrap(err)
		}
		return nil
	case strings.HasPrefix(dest, "s3://"):
		return w.publish(ctx, dest, content)
	default:
		return w.writeFile(dest, content)
	}
}

// writeFile replaces dest atomically. The temporary file atomic writes
// through is created 0600, so a new file is given FileMode afterwards.
func (w *Writer) writeFile(dest, content string) error {
	_, statErr := os.Stat(dest)
	created := os.IsNotExist(statErr)

	if err := atomic.WriteFile(dest, strings.NewReader(content)); err != nil {
		return errors.New("E005").WithPath(dest).Wrap(err)
	}
	if created {
		if err := os.Chmod(dest, FileMode); err != nil {
			return errors.New("E005").WithPath(dest).Wrap(err)
		}
	}
	w.logger.Debug("wrote output", "path", dest, "bytes", len(content), "created", created)
	return nil
}

func (w *Writer) publish(ctx context.Context, dest, content string) error {
	bucket, key, _ := ParseS3(dest)
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return errors.New("E008").
			WithPath(dest).
			WithDetail("S3 destinations need a bucket and an object key").
			WithSuggestion("Use s3://bucket/path/README.md")
	}

	client, err := w.newClient(ctx)
	if err != nil {
		return errors.New("E008").WithPath(dest).Wrap(err)
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader([]byte(content)),
		ContentType: aws.String(ContentType),
		Metadata: map[string]string{
			"generator":    "readmecraft",
			"generated-at": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return errors.New("E008").WithPath(dest).Wrap(err)
	}
	w.logger.Info("published output", "bucket", bucket, "key", key, "bytes", len(content))
	return nil
}
