// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/awsassist/awsassist/internal/cloudformation"
	"github.com/awsassist/awsassist/internal/meta"
)

var cfnParamsDefaultAttrs = []string{"key", "type", "defaultValue:default"}

// cfnParamsCommandAction lists the parameters a template declares.
func cfnParamsCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner(
		"cfn",
		reflect.TypeOf(cloudformation.Parameter{}),
		cfnParamsDefaultAttrs,
		func(ctx context.Context, cmd *cli.Command) ([]cloudformation.Parameter, error) {
			args, err := Positional(cmd, 1, "<template-url>")
			if err != nil {
				return nil, err
			}
			c, err := cfnClient(ctx, cmd)
			if err != nil {
				return nil, err
			}
			return c.ListParameters(ctx, args[0])
		},
	).Run(ctx, cmd)
}

func cfnCommandBuilder(meta meta.Meta) *cli.Command {
	return groupCommand("cfn", "CloudFormation queries", meta,
		(&QueryCommandBuilder{
			Name:      "params",
			Usage:     "list template parameters",
			UsageText: "awsassist cfn params <template-url> [options]",
			Action:    cfnParamsCommandAction,
			Meta:      meta,
		}).Build(),
	)
}
