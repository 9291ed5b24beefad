// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package cloudformation reads the parameter declarations of a template
// stored in S3.
package cloudformation
