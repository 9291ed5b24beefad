// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output turns a JSON result set into what the user sees: filtered,
// transformed and sorted rows rendered as a table, JSON, YAML or the raw
// document.
package output
