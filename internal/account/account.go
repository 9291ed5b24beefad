// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package account

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	awsx "github.com/awsassist/awsassist/internal/aws"
	"github.com/awsassist/awsassist/internal/log"
)

// STSAPI is the subset of the STS client used here.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// AliasAPI is the subset of the IAM client used here.
type AliasAPI interface {
	ListAccountAliases(ctx context.Context, params *iam.ListAccountAliasesInput, optFns ...func(*iam.Options)) (*iam.ListAccountAliasesOutput, error)
}

var (
	_ STSAPI   = (*sts.Client)(nil)
	_ AliasAPI = (*iam.Client)(nil)
)

// Client resolves account identity.
type Client struct {
	region string
	sts    STSAPI
	iam    AliasAPI
}

// New returns a Client. region is the region of the loaded SDK config.
func New(region string, stsAPI STSAPI, iamAPI AliasAPI) *Client {
	return &Client{region: region, sts: stsAPI, iam: iamAPI}
}

// Identity is the combined answer of the account command.
type Identity struct {
	Region    string `json:"region"`
	AccountID string `json:"accountId"`
	Arn       string `json:"arn"`
	Alias     string `json:"alias,omitempty"`
}

// Region returns the configured region. No remote call is made.
func (c *Client) Region() string {
	return c.region
}

// AccountID returns the account id of the calling identity.
func (c *Client) AccountID(ctx context.Context) (string, error) {
	id, err := c.callerIdentity(ctx)
	if err != nil {
		return "", err
	}
	return id.AccountID, nil
}

// Alias returns the first account alias. ok is false when the account has
// none.
func (c *Client) Alias(ctx context.Context) (alias string, ok bool, err error) {
	out, err := c.iam.ListAccountAliases(ctx, &iam.ListAccountAliasesInput{})
	if err != nil {
		return "", false, fmt.Errorf("list account aliases: %w", err)
	}
	log.Debugf("account aliases: count=%d", len(out.AccountAliases))
	if len(out.AccountAliases) == 0 {
		return "", false, nil
	}
	return out.AccountAliases[0], true, nil
}

// Identity gathers region, account id, caller ARN and alias.
func (c *Client) Identity(ctx context.Context) (*Identity, error) {
	id, err := c.callerIdentity(ctx)
	if err != nil {
		return nil, err
	}
	alias, _, err := c.Alias(ctx)
	if err != nil {
		return nil, err
	}
	id.Alias = alias
	return id, nil
}

func (c *Client) callerIdentity(ctx context.Context) (*Identity, error) {
	out, err := c.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("get caller identity: %w", err)
	}
	if out.Account == nil {
		return nil, awsx.MissingField("get caller identity", "account")
	}
	log.Debugf("caller identity: account=%s", *out.Account)

	id := &Identity{Region: c.region, AccountID: *out.Account}
	if out.Arn != nil {
		id.Arn = *out.Arn
	}
	return id, nil
}
