// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws loads SDK configuration, builds the shared client bundle handed
// to every service wrapper, and classifies AWS API errors.
package aws
