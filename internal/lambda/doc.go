// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package lambda invokes functions either fire-and-forget (Event) or
// synchronously (RequestResponse). Payloads are JSON in both directions.
package lambda
