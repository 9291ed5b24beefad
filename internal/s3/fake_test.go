// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package s3

import (
	"context"
	"io"
	"strconv"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// fakeS3 is an in-memory bucket. Keys are listed in insertion order,
// pageSize keys per ListObjectsV2 page.
type fakeS3 struct {
	keys     []string
	pageSize int

	listCalls   int
	listErr     error
	listErrPage int

	deleted     [][]string
	deleteErrs  []types.Error
	headOut     *s3v2.HeadObjectOutput
	headErr     error
	versionsOut []*s3v2.ListObjectVersionsOutput
	versionsIn  []*s3v2.ListObjectVersionsInput

	createIn     *s3v2.CreateBucketInput
	versioningIn *s3v2.PutBucketVersioningInput
	deletedBkt   string
	buckets      []types.Bucket
}

func (f *fakeS3) CreateBucket(_ context.Context, in *s3v2.CreateBucketInput, _ ...func(*s3v2.Options)) (*s3v2.CreateBucketOutput, error) {
	f.createIn = in
	return &s3v2.CreateBucketOutput{}, nil
}

func (f *fakeS3) DeleteBucket(_ context.Context, in *s3v2.DeleteBucketInput, _ ...func(*s3v2.Options)) (*s3v2.DeleteBucketOutput, error) {
	f.deletedBkt = awsv2.ToString(in.Bucket)
	return &s3v2.DeleteBucketOutput{}, nil
}

func (f *fakeS3) DeleteObjects(_ context.Context, in *s3v2.DeleteObjectsInput, _ ...func(*s3v2.Options)) (*s3v2.DeleteObjectsOutput, error) {
	batch := make([]string, 0, len(in.Delete.Objects))
	for _, o := range in.Delete.Objects {
		batch = append(batch, awsv2.ToString(o.Key))
	}
	f.deleted = append(f.deleted, batch)
	return &s3v2.DeleteObjectsOutput{Errors: f.deleteErrs}, nil
}

func (f *fakeS3) HeadObject(context.Context, *s3v2.HeadObjectInput, ...func(*s3v2.Options)) (*s3v2.HeadObjectOutput, error) {
	return f.headOut, f.headErr
}

func (f *fakeS3) ListBuckets(context.Context, *s3v2.ListBucketsInput, ...func(*s3v2.Options)) (*s3v2.ListBucketsOutput, error) {
	return &s3v2.ListBucketsOutput{Buckets: f.buckets}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3v2.ListObjectsV2Input, _ ...func(*s3v2.Options)) (*s3v2.ListObjectsV2Output, error) {
	f.listCalls++
	if f.listErr != nil && f.listCalls == f.listErrPage {
		return nil, f.listErr
	}

	var matched []string
	for _, k := range f.keys {
		if strings.HasPrefix(k, awsv2.ToString(in.Prefix)) {
			matched = append(matched, k)
		}
	}

	start := 0
	if in.ContinuationToken != nil {
		start, _ = strconv.Atoi(*in.ContinuationToken)
	}
	size := f.pageSize
	if size == 0 {
		size = len(matched) + 1
	}
	end := min(start+size, len(matched))

	out := &s3v2.ListObjectsV2Output{IsTruncated: awsv2.Bool(end < len(matched))}
	for _, k := range matched[start:end] {
		out.Contents = append(out.Contents, types.Object{Key: awsv2.String(k), Size: awsv2.Int64(int64(len(k)))})
	}
	if end < len(matched) {
		out.NextContinuationToken = awsv2.String(strconv.Itoa(end))
	}
	return out, nil
}

func (f *fakeS3) ListObjectVersions(_ context.Context, in *s3v2.ListObjectVersionsInput, _ ...func(*s3v2.Options)) (*s3v2.ListObjectVersionsOutput, error) {
	f.versionsIn = append(f.versionsIn, in)
	out := f.versionsOut[0]
	f.versionsOut = f.versionsOut[1:]
	return out, nil
}

func (f *fakeS3) PutBucketVersioning(_ context.Context, in *s3v2.PutBucketVersioningInput, _ ...func(*s3v2.Options)) (*s3v2.PutBucketVersioningOutput, error) {
	f.versioningIn = in
	return &s3v2.PutBucketVersioningOutput{}, nil
}

type fakeDownloader struct {
	body  string
	err   error
	input *s3v2.GetObjectInput
}

func (d *fakeDownloader) Download(_ context.Context, w io.WriterAt, in *s3v2.GetObjectInput, _ ...func(*manager.Downloader)) (int64, error) {
	d.input = in
	if d.err != nil {
		return 0, d.err
	}
	n, err := w.WriteAt([]byte(d.body), 0)
	return int64(n), err
}

type fakeUploader struct {
	body  string
	input *s3v2.PutObjectInput
}

func (u *fakeUploader) Upload(_ context.Context, in *s3v2.PutObjectInput, _ ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	u.input = in
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	u.body = string(b)
	return &manager.UploadOutput{}, nil
}
