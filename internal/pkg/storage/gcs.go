package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	gcs "cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// GCSOptions configures the Google Cloud Storage driver. Without explicit
// credentials the client falls back to application default credentials.
type GCSOptions struct {
	Bucket          string
	CredentialsFile string
	CredentialsJSON []byte
	Endpoint        string
	WithoutAuth     bool
}

// GCS stores objects in a Google Cloud Storage bucket.
type GCS struct {
	client *gcs.Client
	bucket *gcs.BucketHandle
}

// NewGCS builds the client options from opts and connects.
func NewGCS(ctx context.Context, opts GCSOptions) (*GCS, error) {
	if opts.Bucket == "" {
		return nil, ErrBucketRequired
	}

	var clientOpts []option.ClientOption
	if opts.WithoutAuth {
		clientOpts = append(clientOpts, option.WithoutAuthentication())
	}

	credsJSON := opts.CredentialsJSON
	if len(credsJSON) == 0 && opts.CredentialsFile != "" {
		// #nosec G304 -- path is from trusted config file.
		b, err := os.ReadFile(opts.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("storage: read gcs credentials: %w", err)
		}
		credsJSON = b
	}
	if len(credsJSON) > 0 {
		creds, err := google.CredentialsFromJSON(ctx, credsJSON, gcs.ScopeReadWrite)
		if err != nil {
			return nil, fmt.Errorf("storage: parse gcs credentials: %w", err)
		}
		clientOpts = append(clientOpts, option.WithCredentials(creds))
	}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}

	client, err := gcs.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("storage: gcs new client: %w", err)
	}

	return &GCS{client: client, bucket: client.Bucket(opts.Bucket)}, nil
}

func (g *GCS) Close() error { return g.client.Close() }

func (g *GCS) Put(ctx context.Context, key string, r io.Reader, _ int64, contentType string) error {
	w := g.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		return errors.Join(fmt.Errorf("storage: gcs put %s: %w", key, err), w.Close())
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("storage: gcs put %s: %w", key, err)
	}
	return nil
}

func (g *GCS) Get(ctx context.Context, key string) (io.ReadCloser, Object, error) {
	r, err := g.bucket.Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, Object{}, ErrObjectNotFound
		}
		return nil, Object{}, fmt.Errorf("storage: gcs get %s: %w", key, err)
	}

	return r, Object{Key: key, Size: r.Attrs.Size, ContentType: r.Attrs.ContentType}, nil
}

func (g *GCS) Delete(ctx context.Context, key string) error {
	err := g.bucket.Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("storage: gcs delete %s: %w", key, err)
	}
	return nil
}
