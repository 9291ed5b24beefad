// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// ErrMissingField reports a response that lacks a field the caller relies on.
var ErrMissingField = errors.New("response missing expected field")

// notFoundCodes are the API error codes that mean "the resource is absent".
var notFoundCodes = map[string]struct{}{
	"NotFound":                        {},
	"NoSuchBucket":                    {},
	"NoSuchEntity":                    {},
	"NoSuchKey":                       {},
	"NoSuchVersion":                   {},
	"PipelineNotFoundException":       {},
	"RepositoryDoesNotExistException": {},
	"ResourceNotFoundException":       {},
}

// IsNotFound reports whether err is an AWS API error that signals an absent
// resource. Transport failures, throttling and access denials are not
// not-found errors.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		_, ok := notFoundCodes[apiErr.ErrorCode()]
		return ok
	}
	return false
}

// MissingField wraps ErrMissingField with the operation and field name.
func MissingField(operation, field string) error {
	return fmt.Errorf("%s: %s: %w", operation, field, ErrMissingField)
}
