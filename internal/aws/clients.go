// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/codecommit"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/awsassist/awsassist/internal/log"
)

// Clients bundles one SDK client per service, all built from the same
// config. It is constructed once by the caller and handed to the service
// wrappers; every client is safe for concurrent reuse.
type Clients struct {
	Config awsv2.Config

	CloudFormation *cloudformation.Client
	CodeCommit     *codecommit.Client
	CodePipeline   *codepipeline.Client
	IAM            *iam.Client
	Lambda         *lambda.Client
	S3             *s3v2.Client
	SecretsManager *secretsmanager.Client
	STS            *sts.Client

	Downloader *manager.Downloader
	Uploader   *manager.Uploader
}

// NewClients builds every service client from cfg. S3 service options (path
// style, endpoint resolver) are applied to the S3 client and the transfer
// manager built on it.
func NewClients(cfg awsv2.Config, s3OptFns ...func(*s3v2.Options)) *Clients {
	s3Client := NewS3(cfg, s3OptFns...)

	c := &Clients{
		Config:         cfg,
		CloudFormation: cloudformation.NewFromConfig(cfg),
		CodeCommit:     codecommit.NewFromConfig(cfg),
		CodePipeline:   codepipeline.NewFromConfig(cfg),
		IAM:            iam.NewFromConfig(cfg),
		Lambda:         lambda.NewFromConfig(cfg),
		S3:             s3Client,
		SecretsManager: secretsmanager.NewFromConfig(cfg),
		STS:            sts.NewFromConfig(cfg),
		Downloader:     manager.NewDownloader(s3Client),
		Uploader:       manager.NewUploader(s3Client),
	}
	log.Debugf("clients created: region=%s", cfg.Region)
	return c
}

// NewS3 constructs a v2 S3 client from the provided config. Additional service
// options can be supplied via optFns.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	client := s3v2.NewFromConfig(cfg, optFns...)
	log.Debugf("s3 client created")
	return client
}

// WithS3PathStyle forces path-style bucket addressing, which S3-compatible
// endpoints such as LocalStack or MinIO usually require.
func WithS3PathStyle(enabled bool) func(*s3v2.Options) {
	return func(o *s3v2.Options) {
		o.UsePathStyle = enabled
	}
}
