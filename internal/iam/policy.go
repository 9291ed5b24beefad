// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package iam

import (
	"encoding/json"
)

// PolicyVersion is the policy language version written into new documents.
const PolicyVersion = "2012-10-17"

// PolicyDocument is an IAM policy or trust policy.
type PolicyDocument struct {
	Version   string      `json:"Version,omitempty"`
	Statement []Statement `json:"Statement"`
}

// Statement is one policy statement.
type Statement struct {
	Effect    string            `json:"Effect"`
	Principal map[string]string `json:"Principal,omitempty"`
	Action    []string          `json:"Action"`
	Resource  []string          `json:"Resource,omitempty"`
}

// TrustPolicy allows principals of accountID to assume the role.
func TrustPolicy(accountID string) PolicyDocument {
	return PolicyDocument{
		Version: PolicyVersion,
		Statement: []Statement{
			{
				Effect:    "Allow",
				Principal: map[string]string{"AWS": accountID},
				Action:    []string{"sts:AssumeRole"},
			},
		},
	}
}

// marshalPolicy encodes doc. Raw JSON (string, []byte, json.RawMessage) is
// passed through after validation.
func marshalPolicy(doc any) (string, error) {
	var raw []byte
	switch d := doc.(type) {
	case string:
		raw = []byte(d)
	case []byte:
		raw = d
	case json.RawMessage:
		raw = d
	default:
		b, err := json.Marshal(doc)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	if !json.Valid(raw) {
		return "", ErrInvalidPolicy
	}
	return string(raw), nil
}
