// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package iam creates roles that the caller's own account may assume,
// attaches AWS managed policies, lists roles by path and reads or writes
// inline role policies.
//
// Policy documents travel as JSON. Documents returned by GetRolePolicy are
// URL-encoded by the service; RolePolicy decodes them before returning.
package iam
