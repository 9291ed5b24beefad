// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package s3 wraps the bucket and object operations awsassist exposes:
// bucket lifecycle, listing, folder-style prefix handling, existence and
// version queries, and file transfer through the S3 transfer manager.
//
// Listings always follow continuation tokens to the end. Bulk deletes are
// issued in batches of MaxDeleteBatch keys.
package s3
