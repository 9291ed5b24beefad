// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"
	"errors"
	"fmt"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	awsx "github.com/awsassist/awsassist/internal/aws"
	"github.com/awsassist/awsassist/internal/log"
	"github.com/awsassist/awsassist/internal/paginate"
)

// MaxDeleteBatch is the most keys a single DeleteObjects call accepts.
const MaxDeleteBatch = 1000

// ListFiles returns every object under prefix in listing order.
func (c *Client) ListFiles(ctx context.Context, bucket, prefix string) ([]Object, error) {
	return paginate.ListAll(ctx, c.objectPages(bucket, prefix))
}

func (c *Client) objectPages(bucket, prefix string) paginate.Fetcher[Object] {
	return func(ctx context.Context, token *string) (paginate.Page[Object], error) {
		log.Debugf("list objects: bucket=%s, prefix=%s, token=%s", bucket, prefix, awsv2.ToString(token))
		out, err := c.api.ListObjectsV2(ctx, &s3v2.ListObjectsV2Input{
			Bucket:            awsv2.String(bucket),
			Prefix:            awsv2.String(prefix),
			ContinuationToken: token,
		})
		if err != nil {
			return paginate.Page[Object]{}, fmt.Errorf("list objects s3://%s/%s: %w", bucket, prefix, err)
		}

		items := make([]Object, 0, len(out.Contents))
		for _, o := range out.Contents {
			if o.Key == nil {
				continue
			}
			items = append(items, toObject(o))
		}

		page := paginate.Page[Object]{Items: items}
		if awsv2.ToBool(out.IsTruncated) {
			page.Next = out.NextContinuationToken
		}
		return page, nil
	}
}

func toObject(o types.Object) Object {
	obj := Object{
		Key:          awsv2.ToString(o.Key),
		LastModified: o.LastModified,
		ETag:         awsv2.ToString(o.ETag),
		Size:         awsv2.ToInt64(o.Size),
		StorageClass: string(o.StorageClass),
	}
	if o.Owner != nil {
		obj.Owner = &Owner{
			DisplayName: awsv2.ToString(o.Owner.DisplayName),
			ID:          awsv2.ToString(o.Owner.ID),
		}
	}
	return obj
}

// SubFolders returns, for every object under prefix, its key with the last
// path segment removed. The result has one entry per object, in listing
// order, and may repeat.
func (c *Client) SubFolders(ctx context.Context, bucket, prefix string) ([]string, error) {
	objects, err := c.ListFiles(ctx, bucket, prefix)
	if err != nil {
		return nil, err
	}

	folders := make([]string, 0, len(objects))
	for _, o := range objects {
		folders = append(folders, parentFolder(o.Key))
	}
	return folders, nil
}

// parentFolder strips the last "/"-separated segment of key.
func parentFolder(key string) string {
	i := strings.LastIndex(key, "/")
	if i < 0 {
		return ""
	}
	return key[:i]
}

// DeleteFolder deletes every object under prefix and returns the deleted
// keys. When nothing is listed no delete call is made.
func (c *Client) DeleteFolder(ctx context.Context, bucket, prefix string) ([]string, error) {
	return c.deletePrefix(ctx, bucket, prefix)
}

func (c *Client) deletePrefix(ctx context.Context, bucket, prefix string) ([]string, error) {
	objects, err := c.ListFiles(ctx, bucket, prefix)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(objects))
	for _, o := range objects {
		keys = append(keys, o.Key)
	}
	if err := c.deleteKeys(ctx, bucket, keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// deleteKeys removes keys in batches of MaxDeleteBatch. Per-key failures
// reported by the service are joined into the returned error.
func (c *Client) deleteKeys(ctx context.Context, bucket string, keys []string) error {
	for start := 0; start < len(keys); start += MaxDeleteBatch {
		end := min(start+MaxDeleteBatch, len(keys))
		batch := keys[start:end]

		ids := make([]types.ObjectIdentifier, 0, len(batch))
		for _, k := range batch {
			ids = append(ids, types.ObjectIdentifier{Key: awsv2.String(k)})
		}

		log.Debugf("delete objects: bucket=%s, count=%d", bucket, len(ids))
		out, err := c.api.DeleteObjects(ctx, &s3v2.DeleteObjectsInput{
			Bucket: awsv2.String(bucket),
			Delete: &types.Delete{Objects: ids, Quiet: awsv2.Bool(true)},
		})
		if err != nil {
			return fmt.Errorf("delete objects s3://%s: %w", bucket, err)
		}
		if len(out.Errors) > 0 {
			errs := make([]error, 0, len(out.Errors))
			for _, e := range out.Errors {
				errs = append(errs, fmt.Errorf("%s: %s: %s", awsv2.ToString(e.Key), awsv2.ToString(e.Code), awsv2.ToString(e.Message)))
			}
			return fmt.Errorf("delete objects s3://%s: %w", bucket, errors.Join(errs...))
		}
	}
	return nil
}

// Exists reports whether key exists in bucket. A not-found answer is
// (false, nil); any other failure is returned.
func (c *Client) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := c.head(ctx, bucket, key)
	if err != nil {
		if awsx.IsNotFound(err) {
			log.Debugf("object not found: bucket=%s, key=%s", bucket, key)
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Size returns the content length of key in bytes.
func (c *Client) Size(ctx context.Context, bucket, key string) (int64, error) {
	out, err := c.head(ctx, bucket, key)
	if err != nil {
		return 0, err
	}
	if out.ContentLength == nil {
		return 0, awsx.MissingField("head object s3://"+bucket+"/"+key, "contentLength")
	}
	return *out.ContentLength, nil
}

func (c *Client) head(ctx context.Context, bucket, key string) (*s3v2.HeadObjectOutput, error) {
	log.Debugf("head object: bucket=%s, key=%s", bucket, key)
	out, err := c.api.HeadObject(ctx, &s3v2.HeadObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("head object s3://%s/%s: %w", bucket, key, err)
	}
	return out, nil
}
