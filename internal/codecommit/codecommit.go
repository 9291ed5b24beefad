// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package codecommit

import (
	"context"
	"fmt"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	cc "github.com/aws/aws-sdk-go-v2/service/codecommit"
	"github.com/aws/aws-sdk-go-v2/service/codecommit/types"

	awsx "github.com/awsassist/awsassist/internal/aws"
	"github.com/awsassist/awsassist/internal/log"
	"github.com/awsassist/awsassist/internal/paginate"
)

// API is the subset of the CodeCommit client used here.
type API interface {
	GetRepository(ctx context.Context, params *cc.GetRepositoryInput, optFns ...func(*cc.Options)) (*cc.GetRepositoryOutput, error)
	ListBranches(ctx context.Context, params *cc.ListBranchesInput, optFns ...func(*cc.Options)) (*cc.ListBranchesOutput, error)
	ListRepositories(ctx context.Context, params *cc.ListRepositoriesInput, optFns ...func(*cc.Options)) (*cc.ListRepositoriesOutput, error)
}

var _ API = (*cc.Client)(nil)

// Client answers repository queries.
type Client struct {
	api API
}

// New returns a Client backed by api.
func New(api API) *Client {
	return &Client{api: api}
}

// Repository is a name and id pair from ListRepositories.
type Repository struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Metadata describes a single repository.
type Metadata struct {
	Name          string     `json:"name"`
	ID            string     `json:"id"`
	Arn           string     `json:"arn"`
	AccountID     string     `json:"accountId"`
	Description   string     `json:"description,omitempty"`
	DefaultBranch string     `json:"defaultBranch,omitempty"`
	CloneURLHTTP  string     `json:"cloneUrlHttp"`
	CloneURLSSH   string     `json:"cloneUrlSsh"`
	Created       *time.Time `json:"created,omitempty"`
	LastModified  *time.Time `json:"lastModified,omitempty"`
}

// ListRepositories returns every repository sorted by name, ascending.
func (c *Client) ListRepositories(ctx context.Context) ([]Repository, error) {
	return paginate.ListAll(ctx, func(ctx context.Context, token *string) (paginate.Page[Repository], error) {
		log.Debugf("list repositories: token=%s", awsv2.ToString(token))
		out, err := c.api.ListRepositories(ctx, &cc.ListRepositoriesInput{
			SortBy:    types.SortByEnumRepositoryName,
			Order:     types.OrderEnumAscending,
			NextToken: token,
		})
		if err != nil {
			return paginate.Page[Repository]{}, fmt.Errorf("list repositories: %w", err)
		}

		items := make([]Repository, 0, len(out.Repositories))
		for _, r := range out.Repositories {
			items = append(items, Repository{
				Name: awsv2.ToString(r.RepositoryName),
				ID:   awsv2.ToString(r.RepositoryId),
			})
		}
		return paginate.Page[Repository]{Items: items, Next: out.NextToken}, nil
	})
}

// Branches returns every branch name of repo.
func (c *Client) Branches(ctx context.Context, repo string) ([]string, error) {
	return paginate.ListAll(ctx, func(ctx context.Context, token *string) (paginate.Page[string], error) {
		log.Debugf("list branches: repo=%s, token=%s", repo, awsv2.ToString(token))
		out, err := c.api.ListBranches(ctx, &cc.ListBranchesInput{
			RepositoryName: awsv2.String(repo),
			NextToken:      token,
		})
		if err != nil {
			return paginate.Page[string]{}, fmt.Errorf("list branches %s: %w", repo, err)
		}
		return paginate.Page[string]{Items: out.Branches, Next: out.NextToken}, nil
	})
}

// Repository returns the metadata of repo.
func (c *Client) Repository(ctx context.Context, repo string) (*Metadata, error) {
	log.Debugf("get repository: repo=%s", repo)
	out, err := c.api.GetRepository(ctx, &cc.GetRepositoryInput{
		RepositoryName: awsv2.String(repo),
	})
	if err != nil {
		return nil, fmt.Errorf("get repository %s: %w", repo, err)
	}
	md := out.RepositoryMetadata
	if md == nil {
		return nil, awsx.MissingField("get repository "+repo, "repositoryMetadata")
	}

	return &Metadata{
		Name:          awsv2.ToString(md.RepositoryName),
		ID:            awsv2.ToString(md.RepositoryId),
		Arn:           awsv2.ToString(md.Arn),
		AccountID:     awsv2.ToString(md.AccountId),
		Description:   awsv2.ToString(md.RepositoryDescription),
		DefaultBranch: awsv2.ToString(md.DefaultBranch),
		CloneURLHTTP:  awsv2.ToString(md.CloneUrlHttp),
		CloneURLSSH:   awsv2.ToString(md.CloneUrlSsh),
		Created:       md.CreationDate,
		LastModified:  md.LastModifiedDate,
	}, nil
}
