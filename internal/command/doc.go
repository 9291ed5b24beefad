// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for awsassist. One service
// command (s3, iam, cp, ...) holds the subcommands for that service; listing
// subcommands share the query flags and render through the output package.
package command
