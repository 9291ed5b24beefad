// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"
	"errors"
	"fmt"
	"os"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/awsassist/awsassist/internal/log"
)

// ErrNoTransfer is returned when a transfer is requested from a Client
// built without a transfer manager.
var ErrNoTransfer = errors.New("s3 transfer manager not configured")

// Download writes key to the local file path and returns the bytes written.
// A non-empty versionID selects that version of the object. The partial file
// is removed when the download fails.
func (c *Client) Download(ctx context.Context, bucket, key, path, versionID string) (int64, error) {
	if c.down == nil {
		return 0, ErrNoTransfer
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("download s3://%s/%s: %w", bucket, key, err)
	}

	in := &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	}
	if versionID != "" {
		in.VersionId = awsv2.String(versionID)
	}

	log.Debugf("download: bucket=%s, key=%s, version=%s, path=%s", bucket, key, versionID, path)
	n, err := c.down.Download(ctx, f, in)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, fmt.Errorf("download s3://%s/%s: %w", bucket, key, err)
	}
	return n, nil
}

// Upload sends the local file path to key.
func (c *Client) Upload(ctx context.Context, bucket, key, path string) error {
	if c.up == nil {
		return ErrNoTransfer
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("upload s3://%s/%s: %w", bucket, key, err)
	}
	defer f.Close()

	log.Debugf("upload: bucket=%s, key=%s, path=%s", bucket, key, path)
	_, err = c.up.Upload(ctx, &s3v2.PutObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
		Body:   f,
	})
	if err != nil {
		return fmt.Errorf("upload s3://%s/%s: %w", bucket, key, err)
	}
	return nil
}
