// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// API is the subset of the S3 client used here.
type API interface {
	CreateBucket(ctx context.Context, params *s3v2.CreateBucketInput, optFns ...func(*s3v2.Options)) (*s3v2.CreateBucketOutput, error)
	DeleteBucket(ctx context.Context, params *s3v2.DeleteBucketInput, optFns ...func(*s3v2.Options)) (*s3v2.DeleteBucketOutput, error)
	DeleteObjects(ctx context.Context, params *s3v2.DeleteObjectsInput, optFns ...func(*s3v2.Options)) (*s3v2.DeleteObjectsOutput, error)
	HeadObject(ctx context.Context, params *s3v2.HeadObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.HeadObjectOutput, error)
	ListBuckets(ctx context.Context, params *s3v2.ListBucketsInput, optFns ...func(*s3v2.Options)) (*s3v2.ListBucketsOutput, error)
	ListObjectsV2(ctx context.Context, params *s3v2.ListObjectsV2Input, optFns ...func(*s3v2.Options)) (*s3v2.ListObjectsV2Output, error)
	ListObjectVersions(ctx context.Context, params *s3v2.ListObjectVersionsInput, optFns ...func(*s3v2.Options)) (*s3v2.ListObjectVersionsOutput, error)
	PutBucketVersioning(ctx context.Context, params *s3v2.PutBucketVersioningInput, optFns ...func(*s3v2.Options)) (*s3v2.PutBucketVersioningOutput, error)
}

// Downloader is the transfer manager download side.
type Downloader interface {
	Download(ctx context.Context, w io.WriterAt, input *s3v2.GetObjectInput, options ...func(*manager.Downloader)) (int64, error)
}

// Uploader is the transfer manager upload side.
type Uploader interface {
	Upload(ctx context.Context, input *s3v2.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

var (
	_ API        = (*s3v2.Client)(nil)
	_ Downloader = (*manager.Downloader)(nil)
	_ Uploader   = (*manager.Uploader)(nil)
)

// Client performs bucket and object operations.
type Client struct {
	api  API
	down Downloader
	up   Uploader
}

// New returns a Client. down and up may be nil when no transfers are made.
func New(api API, down Downloader, up Uploader) *Client {
	return &Client{api: api, down: down, up: up}
}

// Bucket is one entry of ListBuckets.
type Bucket struct {
	Name    string     `json:"name"`
	Region  string     `json:"region,omitempty"`
	Created *time.Time `json:"created,omitempty"`
}

// Owner identifies an object owner.
type Owner struct {
	DisplayName string `json:"displayName,omitempty"`
	ID          string `json:"id"`
}

// Object is one entry of ListFiles.
type Object struct {
	Key          string     `json:"key"`
	LastModified *time.Time `json:"lastModified,omitempty"`
	ETag         string     `json:"etag"`
	Size         int64      `json:"size"`
	StorageClass string     `json:"storageClass"`
	Owner        *Owner     `json:"owner,omitempty"`
}

// Version is one object version or delete marker.
type Version struct {
	Key            string     `json:"key"`
	VersionID      string     `json:"versionId"`
	IsLatest       bool       `json:"isLatest"`
	IsDeleteMarker bool       `json:"isDeleteMarker"`
	LastModified   *time.Time `json:"lastModified,omitempty"`
	Size           int64      `json:"size"`
}
