// Package storage implements the object storage contract on top of a
// Supabase storage bucket.
package storage

import (
	"context"
	"fmt"
	"io"

	storage_go "github.com/supabase-community/storage-go"
)

// Config holds connection settings for the storage service
type Config struct {
	URL    string
	APIKey string
	Bucket string
}

// Client is an object store backed by a single Supabase bucket
type Client struct {
	bucket string
	api    *storage_go.Client
}

// NewClient creates a storage client for the configured bucket
func NewClient(cfg Config) *Client {
	return &Client{
		bucket: cfg.Bucket,
		api:    storage_go.NewClient(cfg.URL, cfg.APIKey, nil),
	}
}

// Upload stores body at path in the bucket and returns the object's public URL.
// Uploads are upserts so a retried recording overwrites its own partial object
// instead of failing on a duplicate path.
func (c *Client) Upload(ctx context.Context, path, contentType string, body io.Reader, size int64) (string, error) {
	upsert := true
	opts := storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}

	if _, err := c.api.UploadFile(c.bucket, path, body, opts); err != nil {
		return "", fmt.Errorf("uploading %s to bucket %s: %w", path, c.bucket, err)
	}

	res := c.api.GetPublicUrl(c.bucket, path)
	if res.SignedURL == "" {
		return "", fmt.Errorf("no public URL for uploaded object %s", path)
	}

	return res.SignedURL, nil
}

// Delete removes the object at path from the bucket
func (c *Client) Delete(ctx context.Context, path string) error {
	if _, err := c.api.RemoveFile(c.bucket, []string{path}); err != nil {
		return fmt.Errorf("removing %s from bucket %s: %w", path, c.bucket, err)
	}
	return nil
}
