// Package s3 keeps exported documents in an S3 bucket, or any S3-compatible
// service reachable through a custom endpoint.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"resume-builder/internal/shared/storage/object"
)

// Options configures the bucket and how objects are written to it.
type Options struct {
	Region   string
	Bucket   string
	Prefix   string
	KMSKeyID string
	// Endpoint points the client at an S3-compatible service such as MinIO.
	// Path-style addressing is used whenever it is set.
	Endpoint string
}

// Store is an object.ObjectStore over one bucket and key prefix.
type Store struct {
	client *s3.Client
	opts   Options
}

// New loads the default AWS credential chain and builds the client.
func New(ctx context.Context, opts Options) (*Store, error) {
	opts.Bucket = strings.TrimSpace(opts.Bucket)
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	opts.Prefix = strings.Trim(strings.TrimSpace(opts.Prefix), "/")
	opts.KMSKeyID = strings.TrimSpace(opts.KMSKeyID)
	opts.Endpoint = strings.TrimSpace(opts.Endpoint)

	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &Store{client: client, opts: opts}, nil
}

// Put uploads r and reports how many bytes were sent.
func (s *Store) Put(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	body := &countingReader{r: r}
	input := s.putInput(s.objectKey(storageKey), contentType, body)
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return 0, fmt.Errorf("s3 put s3://%s/%s: %w", s.opts.Bucket, *input.Key, err)
	}
	return body.n, nil
}

// Open streams a stored object. A missing key maps to object.ErrNotFound.
func (s *Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := s.objectKey(storageKey)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
	})
	var missing *s3types.NoSuchKey
	if errors.As(err, &missing) {
		return nil, fmt.Errorf("%w: s3://%s/%s", object.ErrNotFound, s.opts.Bucket, key)
	}
	if err != nil {
		return nil, fmt.Errorf("s3 get s3://%s/%s: %w", s.opts.Bucket, key, err)
	}
	return out.Body, nil
}

// putInput requests server side encryption on every write, with KMS when a
// key is configured. The stored object carries a download disposition so a
// direct or presigned link saves under the export's file name.
func (s *Store) putInput(key, contentType string, body io.Reader) *s3.PutObjectInput {
	input := &s3.PutObjectInput{
		Bucket:             aws.String(s.opts.Bucket),
		Key:                aws.String(key),
		Body:               body,
		ContentType:        aws.String(contentType),
		ContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", downloadName(key))),
	}
	if s.opts.KMSKeyID != "" {
		input.ServerSideEncryption = s3types.ServerSideEncryptionAwsKms
		input.SSEKMSKeyId = aws.String(s.opts.KMSKeyID)
		return input
	}
	input.ServerSideEncryption = s3types.ServerSideEncryptionAes256
	return input
}

func (s *Store) objectKey(storageKey string) string {
	return applyPrefix(s.opts.Prefix, storageKey)
}

// downloadName strips the "<archiveID>_" that ExportKey puts in front of the
// file name.
func downloadName(key string) string {
	base := path.Base(key)
	if _, name, ok := strings.Cut(base, "_"); ok && name != "" {
		return name
	}
	return base
}

func applyPrefix(prefix, key string) string {
	prefix = strings.Trim(prefix, "/")
	key = strings.TrimLeft(key, "/")
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix
	default:
		return prefix + "/" + key
	}
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

var _ object.ObjectStore = (*Store)(nil)
