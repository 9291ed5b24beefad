// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/urfave/cli/v3"

	"github.com/awsassist/awsassist/internal/account"
	awsx "github.com/awsassist/awsassist/internal/aws"
	"github.com/awsassist/awsassist/internal/cloudformation"
	"github.com/awsassist/awsassist/internal/codecommit"
	"github.com/awsassist/awsassist/internal/codepipeline"
	"github.com/awsassist/awsassist/internal/iam"
	"github.com/awsassist/awsassist/internal/lambda"
	"github.com/awsassist/awsassist/internal/log"
	"github.com/awsassist/awsassist/internal/s3"
	"github.com/awsassist/awsassist/internal/secrets"
)

// awsOptions maps the root AWS flags onto config load options.
func awsOptions(cmd *cli.Command) (opts []awsx.Option) {
	if v := cmd.String("profile"); v != "" {
		opts = append(opts, awsx.WithProfile(v))
	}
	if v := cmd.String("region"); v != "" {
		opts = append(opts, awsx.WithRegion(v))
	}
	if v := cmd.String("role-arn"); v != "" {
		opts = append(opts, awsx.WithRoleARN(v))
	}
	if v := cmd.String("endpoint"); v != "" {
		opts = append(opts, awsx.WithEndpoint(v))
	}
	if n := cmd.Int("max-attempts"); n > 0 {
		opts = append(opts, awsx.WithRetryer(func() awsv2.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), n)
		}))
	}
	return
}

// loadClients builds the client bundle from the root AWS flags. It is a
// variable so tests can substitute it.
var loadClients = func(ctx context.Context, cmd *cli.Command) (*awsx.Clients, error) {
	cfg, err := awsx.LoadAWSConfig(ctx, awsOptions(cmd)...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var s3Opts []func(*s3v2.Options)
	if cmd.String("endpoint") != "" {
		s3Opts = append(s3Opts, awsx.WithS3PathStyle(true))
	}
	return awsx.NewClients(cfg, s3Opts...), nil
}

// clients memoizes loadClients on the root command so a run loads the AWS
// config once.
func clients(ctx context.Context, cmd *cli.Command) (*awsx.Clients, error) {
	root := cmd.Root()
	if root.Metadata == nil {
		root.Metadata = map[string]any{}
	}
	if c, ok := root.Metadata["clients"].(*awsx.Clients); ok {
		return c, nil
	}

	c, err := loadClients(ctx, cmd)
	if err != nil {
		return nil, err
	}
	root.Metadata["clients"] = c
	log.Debugf("clients cached: region=%s", c.Config.Region)
	return c, nil
}

func accountClient(ctx context.Context, cmd *cli.Command) (*account.Client, error) {
	c, err := clients(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return account.New(c.Config.Region, c.STS, c.IAM), nil
}

func cfnClient(ctx context.Context, cmd *cli.Command) (*cloudformation.Client, error) {
	c, err := clients(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return cloudformation.New(c.CloudFormation), nil
}

func ccClient(ctx context.Context, cmd *cli.Command) (*codecommit.Client, error) {
	c, err := clients(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return codecommit.New(c.CodeCommit), nil
}

func cpClient(ctx context.Context, cmd *cli.Command) (*codepipeline.Client, error) {
	c, err := clients(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return codepipeline.New(c.CodePipeline), nil
}

func iamClient(ctx context.Context, cmd *cli.Command) (*iam.Client, error) {
	c, err := clients(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return iam.New(c.IAM, account.New(c.Config.Region, c.STS, c.IAM)), nil
}

func s3Client(ctx context.Context, cmd *cli.Command) (*s3.Client, error) {
	c, err := clients(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return s3.New(c.S3, c.Downloader, c.Uploader), nil
}

func secretsClient(ctx context.Context, cmd *cli.Command) (*secrets.Client, error) {
	c, err := clients(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return secrets.New(c.SecretsManager), nil
}

func lambdaClient(ctx context.Context, cmd *cli.Command) (*lambda.Client, error) {
	c, err := clients(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return lambda.New(c.Lambda), nil
}
