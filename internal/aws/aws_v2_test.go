// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"errors"
	"fmt"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptions verifies each Option populates the options struct.
func TestOptions(t *testing.T) {
	var opts options
	WithProfile("ops")(&opts)
	WithRegion("ap-southeast-1")(&opts)
	WithRoleARN("arn:aws:iam::123456789012:role/deployer")(&opts)
	WithEndpoint("http://localhost:4566")(&opts)
	WithRetryer(func() awsv2.Retryer { return retry.NewStandard() })(&opts)

	assert.Equal(t, "ops", opts.profile)
	assert.Equal(t, "ap-southeast-1", opts.region)
	assert.Equal(t, "arn:aws:iam::123456789012:role/deployer", opts.roleARN)
	assert.Equal(t, "http://localhost:4566", opts.endpoint)
	require.NotNil(t, opts.retryer)
	assert.NotNil(t, opts.retryer())
}

// TestLoadAWSConfig_WithRegion verifies the region option reaches the config.
func TestLoadAWSConfig_WithRegion(t *testing.T) {
	tests := []string{"us-west-2", "eu-central-1"}

	for _, region := range tests {
		t.Run(region, func(t *testing.T) {
			cfg, err := LoadAWSConfig(context.Background(), WithRegion(region))
			require.NoError(t, err)
			assert.Equal(t, region, cfg.Region)
		})
	}
}

// TestLoadAWSConfig_OptionsOrder verifies that later options override
// earlier ones.
func TestLoadAWSConfig_OptionsOrder(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(),
		WithRegion("us-east-1"),
		WithRegion("eu-west-1"),
	)

	assert.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
}

// TestLoadAWSConfig_WithEndpoint verifies the base endpoint is recorded.
func TestLoadAWSConfig_WithEndpoint(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(),
		WithRegion("us-east-1"),
		WithEndpoint("http://localhost:4566"),
	)

	require.NoError(t, err)
	require.NotNil(t, cfg.BaseEndpoint)
	assert.Equal(t, "http://localhost:4566", *cfg.BaseEndpoint)
}

// TestLoadAWSConfig_WithRoleARN verifies an assume-role credentials provider
// replaces the default chain. No call is made until credentials are needed.
func TestLoadAWSConfig_WithRoleARN(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(),
		WithRegion("us-east-1"),
		WithRoleARN("arn:aws:iam::123456789012:role/deployer"),
	)

	require.NoError(t, err)
	assert.IsType(t, &awsv2.CredentialsCache{}, cfg.Credentials)
}

// TestNewClients verifies every service client is built from one config.
func TestNewClients(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-east-1"))
	require.NoError(t, err)

	c := NewClients(cfg, WithS3PathStyle(true))

	assert.Equal(t, "us-east-1", c.Config.Region)
	assert.NotNil(t, c.CloudFormation)
	assert.NotNil(t, c.CodeCommit)
	assert.NotNil(t, c.CodePipeline)
	assert.NotNil(t, c.IAM)
	assert.NotNil(t, c.Lambda)
	assert.NotNil(t, c.SecretsManager)
	assert.NotNil(t, c.STS)
	assert.NotNil(t, c.Downloader)
	assert.NotNil(t, c.Uploader)
	assert.IsType(t, &s3v2.Client{}, c.S3)
	assert.True(t, c.S3.Options().UsePathStyle)
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "plain error", err: errors.New("dial tcp: timeout"), want: false},
		{name: "s3 head not found", err: &s3types.NotFound{}, want: true},
		{name: "s3 no such key", err: &s3types.NoSuchKey{}, want: true},
		{name: "iam no such entity", err: &iamtypes.NoSuchEntityException{}, want: true},
		{name: "generic resource not found", err: &smithy.GenericAPIError{Code: "ResourceNotFoundException"}, want: true},
		{name: "access denied", err: &smithy.GenericAPIError{Code: "AccessDenied"}, want: false},
		{name: "wrapped not found", err: fmt.Errorf("head object: %w", &s3types.NotFound{}), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotFound(tt.err))
		})
	}
}

func TestMissingField(t *testing.T) {
	err := MissingField("get caller identity", "Account")

	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "get caller identity: Account")
}
