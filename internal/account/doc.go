// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package account answers "who and where am I": the configured region, the
// caller's account id and the account alias.
package account
