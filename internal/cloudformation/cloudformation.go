// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	cfn "github.com/aws/aws-sdk-go-v2/service/cloudformation"

	"github.com/awsassist/awsassist/internal/log"
)

// API is the subset of the CloudFormation client used here.
type API interface {
	GetTemplateSummary(ctx context.Context, params *cfn.GetTemplateSummaryInput, optFns ...func(*cfn.Options)) (*cfn.GetTemplateSummaryOutput, error)
}

var _ API = (*cfn.Client)(nil)

// Client reads template metadata.
type Client struct {
	api API
}

// New returns a Client backed by api.
func New(api API) *Client {
	return &Client{api: api}
}

// Parameter is one parameter declared by a template.
type Parameter struct {
	Key           string   `json:"key"`
	DefaultValue  string   `json:"defaultValue,omitempty"`
	Type          string   `json:"type"`
	NoEcho        bool     `json:"noEcho"`
	Description   string   `json:"description,omitempty"`
	AllowedValues []string `json:"allowedValues,omitempty"`
}

// ListParameters returns the parameters declared by the template at
// templateURL. A template without parameters yields an empty slice.
func (c *Client) ListParameters(ctx context.Context, templateURL string) ([]Parameter, error) {
	log.Debugf("get template summary: url=%s", templateURL)
	out, err := c.api.GetTemplateSummary(ctx, &cfn.GetTemplateSummaryInput{
		TemplateURL: awsv2.String(templateURL),
	})
	if err != nil {
		return nil, fmt.Errorf("get template summary %s: %w", templateURL, err)
	}

	params := make([]Parameter, 0, len(out.Parameters))
	for _, p := range out.Parameters {
		param := Parameter{
			Key:          awsv2.ToString(p.ParameterKey),
			DefaultValue: awsv2.ToString(p.DefaultValue),
			Type:         awsv2.ToString(p.ParameterType),
			NoEcho:       awsv2.ToBool(p.NoEcho),
			Description:  awsv2.ToString(p.Description),
		}
		if p.ParameterConstraints != nil {
			param.AllowedValues = p.ParameterConstraints.AllowedValues
		}
		params = append(params, param)
	}
	log.Debugf("template parameters: count=%d", len(params))
	return params, nil
}
