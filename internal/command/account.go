// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/awsassist/awsassist/internal/account"
	"github.com/awsassist/awsassist/internal/meta"
)

var accountDefaultAttrs = []string{"accountId", "alias", "region"}

// accountCommandAction prints the caller's account id, alias and region.
func accountCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner(
		"account",
		reflect.TypeOf(account.Identity{}),
		accountDefaultAttrs,
		one(func(ctx context.Context, cmd *cli.Command) (*account.Identity, error) {
			if _, err := Positional(cmd, 0); err != nil {
				return nil, err
			}
			c, err := accountClient(ctx, cmd)
			if err != nil {
				return nil, err
			}
			return c.Identity(ctx)
		}),
	).Run(ctx, cmd)
}

func accountCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "account",
		Usage:     "caller account id, alias and region",
		UsageText: "awsassist account [options]",
		Action:    accountCommandAction,
		Meta:      meta,
	}).Build()
}
