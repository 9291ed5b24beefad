// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

// Package secrets reads secret strings from AWS Secrets Manager.
package secrets

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	sm "github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/awsassist/awsassist/internal/log"
)

// API is the subset of the Secrets Manager client used here.
type API interface {
	GetSecretValue(ctx context.Context, params *sm.GetSecretValueInput, optFns ...func(*sm.Options)) (*sm.GetSecretValueOutput, error)
}

var _ API = (*sm.Client)(nil)

// Client reads secrets.
type Client struct {
	api API
}

// New returns a Client backed by api.
func New(api API) *Client {
	return &Client{api: api}
}

// Get returns the current string value of the secret id. ok is false when
// the secret holds no string value, for example a binary-only secret.
func (c *Client) Get(ctx context.Context, id string) (value string, ok bool, err error) {
	log.Debugf("get secret value: id=%s", id)
	out, err := c.api.GetSecretValue(ctx, &sm.GetSecretValueInput{
		SecretId: awsv2.String(id),
	})
	if err != nil {
		return "", false, fmt.Errorf("get secret %s: %w", id, err)
	}
	if out == nil || out.SecretString == nil {
		return "", false, nil
	}
	return *out.SecretString, true, nil
}
