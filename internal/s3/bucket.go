// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/awsassist/awsassist/internal/log"
	"github.com/awsassist/awsassist/internal/paginate"
)

// DefaultRegion is the region that must not be sent as a location constraint.
const DefaultRegion = "us-east-1"

// CreateBucket creates a private bucket in region and enables versioning on
// it.
func (c *Client) CreateBucket(ctx context.Context, name, region string) error {
	in := &s3v2.CreateBucketInput{
		Bucket: awsv2.String(name),
		ACL:    types.BucketCannedACLPrivate,
	}
	if region != "" && region != DefaultRegion {
		in.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}

	log.Debugf("create bucket: name=%s, region=%s", name, region)
	if _, err := c.api.CreateBucket(ctx, in); err != nil {
		return fmt.Errorf("create bucket %s: %w", name, err)
	}

	_, err := c.api.PutBucketVersioning(ctx, &s3v2.PutBucketVersioningInput{
		Bucket: awsv2.String(name),
		VersioningConfiguration: &types.VersioningConfiguration{
			Status: types.BucketVersioningStatusEnabled,
		},
	})
	if err != nil {
		return fmt.Errorf("enable versioning %s: %w", name, err)
	}
	return nil
}

// EmptyBucket deletes every current object in the bucket and returns the
// number of keys deleted. Noncurrent versions are left in place.
func (c *Client) EmptyBucket(ctx context.Context, name string) (int, error) {
	keys, err := c.deletePrefix(ctx, name, "")
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// DeleteBucket empties the bucket and then deletes it.
func (c *Client) DeleteBucket(ctx context.Context, name string) error {
	if _, err := c.EmptyBucket(ctx, name); err != nil {
		return err
	}

	log.Debugf("delete bucket: name=%s", name)
	if _, err := c.api.DeleteBucket(ctx, &s3v2.DeleteBucketInput{Bucket: awsv2.String(name)}); err != nil {
		return fmt.Errorf("delete bucket %s: %w", name, err)
	}
	return nil
}

// ListBuckets returns every bucket visible to the caller.
func (c *Client) ListBuckets(ctx context.Context) ([]Bucket, error) {
	return paginate.ListAll(ctx, func(ctx context.Context, token *string) (paginate.Page[Bucket], error) {
		out, err := c.api.ListBuckets(ctx, &s3v2.ListBucketsInput{ContinuationToken: token})
		if err != nil {
			return paginate.Page[Bucket]{}, fmt.Errorf("list buckets: %w", err)
		}

		items := make([]Bucket, 0, len(out.Buckets))
		for _, b := range out.Buckets {
			items = append(items, Bucket{
				Name:    awsv2.ToString(b.Name),
				Region:  awsv2.ToString(b.BucketRegion),
				Created: b.CreationDate,
			})
		}
		return paginate.Page[Bucket]{Items: items, Next: out.ContinuationToken}, nil
	})
}
