// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/awsassist/awsassist/internal/codepipeline"
	"github.com/awsassist/awsassist/internal/meta"
)

var (
	cpPipelinesDefaultAttrs = []string{"name", "version", "updated"}
	cpPipelineDefaultAttrs  = []string{"name", "version", "roleArn", "stages"}
	cpStateDefaultAttrs     = []string{"stage", "action", "status"}
)

// stateRow is one action of the state command. The first row carries the
// reduced pipeline status under the "pipeline" stage.
type stateRow struct {
	Stage  string `json:"stage"`
	Action string `json:"action"`
	Status string `json:"status"`
}

// stateRows flattens stages into rows, led by the aggregate status.
func stateRows(stages []codepipeline.StageState) []stateRow {
	rows := []stateRow{{
		Stage:  "pipeline",
		Status: string(codepipeline.AggregateStatus(stages)),
	}}
	for _, s := range stages {
		for _, a := range s.Actions {
			rows = append(rows, stateRow{Stage: s.Name, Action: a.Name, Status: a.Status})
		}
	}
	return rows
}

func cpPipelinesCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner(
		"cp",
		reflect.TypeOf(codepipeline.PipelineSummary{}),
		cpPipelinesDefaultAttrs,
		func(ctx context.Context, cmd *cli.Command) ([]codepipeline.PipelineSummary, error) {
			if _, err := Positional(cmd, 0); err != nil {
				return nil, err
			}
			c, err := cpClient(ctx, cmd)
			if err != nil {
				return nil, err
			}
			return c.ListPipelines(ctx)
		},
	).Run(ctx, cmd)
}

func cpPipelineCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner(
		"cp",
		reflect.TypeOf(codepipeline.Pipeline{}),
		cpPipelineDefaultAttrs,
		one(func(ctx context.Context, cmd *cli.Command) (*codepipeline.Pipeline, error) {
			args, err := Positional(cmd, 1, "<pipeline>")
			if err != nil {
				return nil, err
			}
			c, err := cpClient(ctx, cmd)
			if err != nil {
				return nil, err
			}
			return c.Pipeline(ctx, args[0])
		}),
	).Run(ctx, cmd)
}

func cpStateCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner(
		"cp",
		reflect.TypeOf(stateRow{}),
		cpStateDefaultAttrs,
		func(ctx context.Context, cmd *cli.Command) ([]stateRow, error) {
			args, err := Positional(cmd, 1, "<pipeline>")
			if err != nil {
				return nil, err
			}
			c, err := cpClient(ctx, cmd)
			if err != nil {
				return nil, err
			}
			stages, err := c.StageStates(ctx, args[0])
			if err != nil {
				return nil, err
			}
			return stateRows(stages), nil
		},
	).Run(ctx, cmd)
}

func cpCommandBuilder(meta meta.Meta) *cli.Command {
	return groupCommand("cp", "CodePipeline queries", meta,
		(&QueryCommandBuilder{
			Name:      "pipelines",
			Usage:     "list pipelines",
			UsageText: "awsassist cp pipelines [options]",
			Action:    cpPipelinesCommandAction,
			Meta:      meta,
		}).Build(),
		(&QueryCommandBuilder{
			Name:      "pipeline",
			Usage:     "show a pipeline declaration",
			UsageText: "awsassist cp pipeline <pipeline> [options]",
			Action:    cpPipelineCommandAction,
			Meta:      meta,
		}).Build(),
		(&QueryCommandBuilder{
			Name:      "state",
			Usage:     "show the reduced pipeline status and its action statuses",
			UsageText: "awsassist cp state <pipeline> [options]",
			Action:    cpStateCommandAction,
			Meta:      meta,
		}).Build(),
	)
}
