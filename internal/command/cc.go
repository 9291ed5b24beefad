// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/awsassist/awsassist/internal/codecommit"
	"github.com/awsassist/awsassist/internal/meta"
)

var (
	ccReposDefaultAttrs    = []string{"name", "id"}
	ccBranchesDefaultAttrs = []string{"name"}
	ccRepoDefaultAttrs     = []string{"name", "defaultBranch", "cloneUrlHttp", "lastModified"}
)

// branch is the row shape of the branches command.
type branch struct {
	Name string `json:"name"`
}

func ccReposCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner(
		"cc",
		reflect.TypeOf(codecommit.Repository{}),
		ccReposDefaultAttrs,
		func(ctx context.Context, cmd *cli.Command) ([]codecommit.Repository, error) {
			if _, err := Positional(cmd, 0); err != nil {
				return nil, err
			}
			c, err := ccClient(ctx, cmd)
			if err != nil {
				return nil, err
			}
			return c.ListRepositories(ctx)
		},
	).Run(ctx, cmd)
}

func ccBranchesCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner(
		"cc",
		reflect.TypeOf(branch{}),
		ccBranchesDefaultAttrs,
		func(ctx context.Context, cmd *cli.Command) ([]branch, error) {
			args, err := Positional(cmd, 1, "<repository>")
			if err != nil {
				return nil, err
			}
			c, err := ccClient(ctx, cmd)
			if err != nil {
				return nil, err
			}
			names, err := c.Branches(ctx, args[0])
			if err != nil {
				return nil, err
			}
			rows := make([]branch, 0, len(names))
			for _, n := range names {
				rows = append(rows, branch{Name: n})
			}
			return rows, nil
		},
	).Run(ctx, cmd)
}

func ccRepoCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner(
		"cc",
		reflect.TypeOf(codecommit.Metadata{}),
		ccRepoDefaultAttrs,
		one(func(ctx context.Context, cmd *cli.Command) (*codecommit.Metadata, error) {
			args, err := Positional(cmd, 1, "<repository>")
			if err != nil {
				return nil, err
			}
			c, err := ccClient(ctx, cmd)
			if err != nil {
				return nil, err
			}
			return c.Repository(ctx, args[0])
		}),
	).Run(ctx, cmd)
}

func ccCommandBuilder(meta meta.Meta) *cli.Command {
	return groupCommand("cc", "CodeCommit queries", meta,
		(&QueryCommandBuilder{
			Name:      "repos",
			Usage:     "list repositories",
			UsageText: "awsassist cc repos [options]",
			Action:    ccReposCommandAction,
			Meta:      meta,
		}).Build(),
		(&QueryCommandBuilder{
			Name:      "branches",
			Usage:     "list the branches of a repository",
			UsageText: "awsassist cc branches <repository> [options]",
			Action:    ccBranchesCommandAction,
			Meta:      meta,
		}).Build(),
		(&QueryCommandBuilder{
			Name:      "repo",
			Usage:     "show repository metadata",
			UsageText: "awsassist cc repo <repository> [options]",
			Action:    ccRepoCommandAction,
			Meta:      meta,
		}).Build(),
	)
}
