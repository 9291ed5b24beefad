// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package attrs parses --attrs specs into the list of result fields to show,
// with per-field output names and value transforms, and drills into JSON
// result objects to fetch those fields.
package attrs
