// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package codepipeline

import (
	"context"
	"fmt"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	cp "github.com/aws/aws-sdk-go-v2/service/codepipeline"

	awsx "github.com/awsassist/awsassist/internal/aws"
	"github.com/awsassist/awsassist/internal/log"
	"github.com/awsassist/awsassist/internal/paginate"
)

// API is the subset of the CodePipeline client used here.
type API interface {
	GetPipeline(ctx context.Context, params *cp.GetPipelineInput, optFns ...func(*cp.Options)) (*cp.GetPipelineOutput, error)
	GetPipelineState(ctx context.Context, params *cp.GetPipelineStateInput, optFns ...func(*cp.Options)) (*cp.GetPipelineStateOutput, error)
	ListPipelines(ctx context.Context, params *cp.ListPipelinesInput, optFns ...func(*cp.Options)) (*cp.ListPipelinesOutput, error)
}

var _ API = (*cp.Client)(nil)

// Client answers pipeline queries.
type Client struct {
	api API
}

// New returns a Client backed by api.
func New(api API) *Client {
	return &Client{api: api}
}

// Pipeline is the declaration summary of a pipeline.
type Pipeline struct {
	Name    string     `json:"name"`
	Arn     string     `json:"arn,omitempty"`
	RoleArn string     `json:"roleArn"`
	Version int32      `json:"version"`
	Stages  []string   `json:"stages"`
	Created *time.Time `json:"created,omitempty"`
	Updated *time.Time `json:"updated,omitempty"`
}

// PipelineSummary is one entry of ListPipelines.
type PipelineSummary struct {
	Name    string     `json:"name"`
	Version int32      `json:"version"`
	Created *time.Time `json:"created,omitempty"`
	Updated *time.Time `json:"updated,omitempty"`
}

// Pipeline returns the declaration of the named pipeline.
func (c *Client) Pipeline(ctx context.Context, name string) (*Pipeline, error) {
	log.Debugf("get pipeline: name=%s", name)
	out, err := c.api.GetPipeline(ctx, &cp.GetPipelineInput{
		Name: awsv2.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("get pipeline %s: %w", name, err)
	}
	if out.Pipeline == nil {
		return nil, awsx.MissingField("get pipeline "+name, "pipeline")
	}

	decl := out.Pipeline
	p := &Pipeline{
		Name:    deref(decl.Name),
		RoleArn: deref(decl.RoleArn),
		Version: awsv2.ToInt32(decl.Version),
		Stages:  make([]string, 0, len(decl.Stages)),
	}
	for _, s := range decl.Stages {
		p.Stages = append(p.Stages, deref(s.Name))
	}
	if md := out.Metadata; md != nil {
		p.Arn = deref(md.PipelineArn)
		p.Created = md.Created
		p.Updated = md.Updated
	}
	return p, nil
}

// StageStates returns the per-stage action statuses of the named pipeline.
func (c *Client) StageStates(ctx context.Context, name string) ([]StageState, error) {
	log.Debugf("get pipeline state: name=%s", name)
	out, err := c.api.GetPipelineState(ctx, &cp.GetPipelineStateInput{
		Name: awsv2.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("get pipeline state %s: %w", name, err)
	}
	return stageStates(out.StageStates), nil
}

// State reduces the pipeline's current stage states with AggregateStatus.
func (c *Client) State(ctx context.Context, name string) (Status, error) {
	stages, err := c.StageStates(ctx, name)
	if err != nil {
		return "", err
	}
	status := AggregateStatus(stages)
	log.Debugf("pipeline state reduced: name=%s, stages=%d, status=%s", name, len(stages), status)
	return status, nil
}

// ListPipelines returns every pipeline in the account and region.
func (c *Client) ListPipelines(ctx context.Context) ([]PipelineSummary, error) {
	return paginate.ListAll(ctx, func(ctx context.Context, token *string) (paginate.Page[PipelineSummary], error) {
		out, err := c.api.ListPipelines(ctx, &cp.ListPipelinesInput{NextToken: token})
		if err != nil {
			return paginate.Page[PipelineSummary]{}, fmt.Errorf("list pipelines: %w", err)
		}

		items := make([]PipelineSummary, 0, len(out.Pipelines))
		for _, p := range out.Pipelines {
			items = append(items, PipelineSummary{
				Name:    deref(p.Name),
				Version: awsv2.ToInt32(p.Version),
				Created: p.Created,
				Updated: p.Updated,
			})
		}
		return paginate.Page[PipelineSummary]{Items: items, Next: out.NextToken}, nil
	})
}
