// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package paginate drives continuation-token listings. A Fetcher wraps a
// single SDK list call; ListAll accumulates every page in order and Pages
// yields them lazily.
//
// Pagination is strictly sequential because each token comes from the
// previous response. Retries belong to the SDK retryer; a failed page fails
// the whole listing.
package paginate
