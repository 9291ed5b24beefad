// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ renders the difference between two versions of a JSON
// document, such as an inline role policy before and after an update.
package differ
