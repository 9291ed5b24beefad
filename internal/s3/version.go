// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"
	"fmt"
	"slices"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/awsassist/awsassist/internal/log"
	"github.com/awsassist/awsassist/internal/paginate"
)

// ObjectVersions returns the versions and delete markers of exactly key,
// merged newest first by LastModified. Entries with equal or missing times
// keep the listing order. Keys that merely share the prefix are dropped.
func (c *Client) ObjectVersions(ctx context.Context, bucket, key string) ([]Version, error) {
	// ListObjectVersions pages on a key marker and a version marker. The
	// key marker rides the pagination token; the version marker follows it
	// here and is reset whenever a listing starts over.
	var versionMarker *string

	fetch := func(ctx context.Context, keyMarker *string) (paginate.Page[Version], error) {
		if keyMarker == nil {
			versionMarker = nil
		}
		log.Debugf("list object versions: bucket=%s, key=%s, marker=%s", bucket, key, awsv2.ToString(keyMarker))
		out, err := c.api.ListObjectVersions(ctx, &s3v2.ListObjectVersionsInput{
			Bucket:          awsv2.String(bucket),
			Prefix:          awsv2.String(key),
			KeyMarker:       keyMarker,
			VersionIdMarker: versionMarker,
		})
		if err != nil {
			return paginate.Page[Version]{}, fmt.Errorf("list object versions s3://%s/%s: %w", bucket, key, err)
		}

		items := make([]Version, 0, len(out.Versions)+len(out.DeleteMarkers))
		for _, v := range out.Versions {
			if awsv2.ToString(v.Key) != key {
				continue
			}
			items = append(items, Version{
				Key:          key,
				VersionID:    awsv2.ToString(v.VersionId),
				IsLatest:     awsv2.ToBool(v.IsLatest),
				LastModified: v.LastModified,
				Size:         awsv2.ToInt64(v.Size),
			})
		}
		for _, m := range out.DeleteMarkers {
			if awsv2.ToString(m.Key) != key {
				continue
			}
			items = append(items, Version{
				Key:            key,
				VersionID:      awsv2.ToString(m.VersionId),
				IsLatest:       awsv2.ToBool(m.IsLatest),
				IsDeleteMarker: true,
				LastModified:   m.LastModified,
			})
		}

		page := paginate.Page[Version]{Items: items}
		if awsv2.ToBool(out.IsTruncated) {
			page.Next = out.NextKeyMarker
			versionMarker = out.NextVersionIdMarker
		}
		return page, nil
	}

	versions, err := paginate.ListAll(ctx, fetch)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(versions, func(a, b Version) int {
		return awsv2.ToTime(b.LastModified).Compare(awsv2.ToTime(a.LastModified))
	})
	return versions, nil
}

// IsDeleted reports whether the latest version of key is a delete marker.
func (c *Client) IsDeleted(ctx context.Context, bucket, key string) (bool, error) {
	versions, err := c.ObjectVersions(ctx, bucket, key)
	if err != nil {
		return false, err
	}
	for _, v := range versions {
		if v.IsDeleteMarker && v.IsLatest {
			return true, nil
		}
	}
	return false, nil
}

// PreviousVersion returns the version id that precedes the current version
// of key. ok is false when key has fewer than two versions.
func (c *Client) PreviousVersion(ctx context.Context, bucket, key string) (id string, ok bool, err error) {
	versions, err := c.ObjectVersions(ctx, bucket, key)
	if err != nil {
		return "", false, err
	}

	seen := 0
	for _, v := range versions {
		if v.IsDeleteMarker {
			continue
		}
		seen++
		if seen == 2 {
			return v.VersionID, true, nil
		}
	}
	return "", false, nil
}
