// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package iam

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	iamv2 "github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/iam/types"

	awsx "github.com/awsassist/awsassist/internal/aws"
	"github.com/awsassist/awsassist/internal/log"
	"github.com/awsassist/awsassist/internal/paginate"
)

// ManagedPolicyPrefix is the ARN prefix of AWS managed policies.
const ManagedPolicyPrefix = "arn:aws:iam::aws:policy/"

// ErrInvalidPolicy is returned when a raw policy document is not JSON.
var ErrInvalidPolicy = errors.New("policy document is not valid JSON")

// API is the subset of the IAM client used here.
type API interface {
	AttachRolePolicy(ctx context.Context, params *iamv2.AttachRolePolicyInput, optFns ...func(*iamv2.Options)) (*iamv2.AttachRolePolicyOutput, error)
	CreateRole(ctx context.Context, params *iamv2.CreateRoleInput, optFns ...func(*iamv2.Options)) (*iamv2.CreateRoleOutput, error)
	GetRolePolicy(ctx context.Context, params *iamv2.GetRolePolicyInput, optFns ...func(*iamv2.Options)) (*iamv2.GetRolePolicyOutput, error)
	ListRoles(ctx context.Context, params *iamv2.ListRolesInput, optFns ...func(*iamv2.Options)) (*iamv2.ListRolesOutput, error)
	PutRolePolicy(ctx context.Context, params *iamv2.PutRolePolicyInput, optFns ...func(*iamv2.Options)) (*iamv2.PutRolePolicyOutput, error)
}

var _ API = (*iamv2.Client)(nil)

// AccountIDer resolves the caller's account id.
type AccountIDer interface {
	AccountID(ctx context.Context) (string, error)
}

// Client manages roles and role policies.
type Client struct {
	api     API
	account AccountIDer
}

// New returns a Client. account is consulted only by CreateRole.
func New(api API, account AccountIDer) *Client {
	return &Client{api: api, account: account}
}

// Role is the reshaped IAM role.
type Role struct {
	Name        string     `json:"name"`
	ID          string     `json:"id"`
	Arn         string     `json:"arn"`
	Path        string     `json:"path"`
	CreateDate  *time.Time `json:"createDate,omitempty"`
	Description string     `json:"description,omitempty"`
}

func toRole(r *types.Role) Role {
	return Role{
		Name:        awsv2.ToString(r.RoleName),
		ID:          awsv2.ToString(r.RoleId),
		Arn:         awsv2.ToString(r.Arn),
		Path:        awsv2.ToString(r.Path),
		CreateDate:  r.CreateDate,
		Description: awsv2.ToString(r.Description),
	}
}

// CreateRole creates a role under path "/" that principals of the caller's
// account may assume. The role has no policies attached.
func (c *Client) CreateRole(ctx context.Context, name, description string) (*Role, error) {
	accountID, err := c.account.AccountID(ctx)
	if err != nil {
		return nil, fmt.Errorf("create role %s: %w", name, err)
	}
	trust, err := marshalPolicy(TrustPolicy(accountID))
	if err != nil {
		return nil, fmt.Errorf("create role %s: %w", name, err)
	}

	log.Debugf("create role: name=%s, account=%s", name, accountID)
	in := &iamv2.CreateRoleInput{
		Path:                     awsv2.String("/"),
		RoleName:                 awsv2.String(name),
		AssumeRolePolicyDocument: awsv2.String(trust),
	}
	if description != "" {
		in.Description = awsv2.String(description)
	}
	out, err := c.api.CreateRole(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create role %s: %w", name, err)
	}
	if out.Role == nil {
		return nil, awsx.MissingField("create role "+name, "role")
	}
	role := toRole(out.Role)
	return &role, nil
}

// AttachManagedPolicy attaches the AWS managed policy policyName to role.
func (c *Client) AttachManagedPolicy(ctx context.Context, role, policyName string) error {
	arn := ManagedPolicyPrefix + policyName
	log.Debugf("attach role policy: role=%s, arn=%s", role, arn)
	_, err := c.api.AttachRolePolicy(ctx, &iamv2.AttachRolePolicyInput{
		RoleName:  awsv2.String(role),
		PolicyArn: awsv2.String(arn),
	})
	if err != nil {
		return fmt.Errorf("attach %s to %s: %w", arn, role, err)
	}
	return nil
}

// ListRoles returns every role whose path starts with pathPrefix. An empty
// prefix lists all roles.
func (c *Client) ListRoles(ctx context.Context, pathPrefix string) ([]Role, error) {
	return paginate.ListAll(ctx, func(ctx context.Context, marker *string) (paginate.Page[Role], error) {
		in := &iamv2.ListRolesInput{Marker: marker}
		if pathPrefix != "" {
			in.PathPrefix = awsv2.String(pathPrefix)
		}
		log.Debugf("list roles: prefix=%s, marker=%s", pathPrefix, awsv2.ToString(marker))
		out, err := c.api.ListRoles(ctx, in)
		if err != nil {
			return paginate.Page[Role]{}, fmt.Errorf("list roles %s: %w", pathPrefix, err)
		}

		page := paginate.Page[Role]{Items: make([]Role, 0, len(out.Roles))}
		for i := range out.Roles {
			page.Items = append(page.Items, toRole(&out.Roles[i]))
		}
		if out.IsTruncated {
			page.Next = out.Marker
		}
		return page, nil
	})
}

// PutRolePolicy adds or replaces the inline policy policyName on role. doc
// is JSON-encoded unless it is already raw JSON.
func (c *Client) PutRolePolicy(ctx context.Context, role, policyName string, doc any) error {
	body, err := marshalPolicy(doc)
	if err != nil {
		return fmt.Errorf("put role policy %s/%s: %w", role, policyName, err)
	}

	log.Debugf("put role policy: role=%s, policy=%s, len=%d", role, policyName, len(body))
	_, err = c.api.PutRolePolicy(ctx, &iamv2.PutRolePolicyInput{
		RoleName:       awsv2.String(role),
		PolicyName:     awsv2.String(policyName),
		PolicyDocument: awsv2.String(body),
	})
	if err != nil {
		return fmt.Errorf("put role policy %s/%s: %w", role, policyName, err)
	}
	return nil
}

// RolePolicy returns the decoded inline policy document. ok is false when
// the role has no inline policy of that name.
func (c *Client) RolePolicy(ctx context.Context, role, policyName string) (doc []byte, ok bool, err error) {
	log.Debugf("get role policy: role=%s, policy=%s", role, policyName)
	out, err := c.api.GetRolePolicy(ctx, &iamv2.GetRolePolicyInput{
		RoleName:   awsv2.String(role),
		PolicyName: awsv2.String(policyName),
	})
	if err != nil {
		if awsx.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get role policy %s/%s: %w", role, policyName, err)
	}
	if out.PolicyDocument == nil {
		return nil, false, awsx.MissingField("get role policy "+role+"/"+policyName, "policyDocument")
	}

	decoded, err := url.PathUnescape(*out.PolicyDocument)
	if err != nil {
		return nil, false, fmt.Errorf("decode role policy %s/%s: %w", role, policyName, err)
	}
	return []byte(decoded), true, nil
}
