// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package codepipeline looks up pipeline declarations and reduces a
// pipeline's stage states to one Succeeded, Failed or InProgress status.
package codepipeline
