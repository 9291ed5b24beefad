// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects rows of a JSON result set with --filter
// expressions.
//
// Each expression is key, operator and target. Operators:
//
//   - = : exact match (numeric for numbers)
//   - ~ : case-insensitive match
//   - ^ : prefix match
//   - < : less than (numeric for numbers)
//   - > : greater than (numeric for numbers)
//   - @ : contains (substring, array element or map key)
//   - / : regular expression match
//
// Any operator may be negated with a leading !, as in key!^logs/.
//
// Examples:
//
//   - "storageClass=GLACIER"
//   - "key^logs/2026/"
//   - "size>1048576"
//   - "key!@tmp"
//
// Keys name an attr by its OutputKey (see package attrs); a key that names
// no attr is looked up in the result object directly. Keys prefixed with _
// are server-side filters and are ignored here. Expressions are separated by
// commas, or by the value of AWSASSIST_FILTER_DELIM.
package filters
