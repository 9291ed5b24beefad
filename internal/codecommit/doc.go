// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package codecommit lists repositories and branches and reads repository
// metadata. Listings follow continuation tokens to the end.
package codecommit
