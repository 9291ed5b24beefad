// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/awsassist/awsassist/internal/meta"
)

func secretGetCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := Positional(cmd, 1, "<secret-id>")
	if err != nil {
		return err
	}
	c, err := secretsClient(ctx, cmd)
	if err != nil {
		return err
	}
	value, ok, err := c.Get(ctx, args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("secret %s has no string value", args[0])
	}
	fmt.Fprintln(Writer(cmd), value)
	return nil
}

func secretCommandBuilder(meta meta.Meta) *cli.Command {
	return groupCommand("secret", "Secrets Manager values", meta,
		(&ActionCommandBuilder{
			Name:      "get",
			Usage:     "print a secret string",
			UsageText: "awsassist secret get <secret-id>",
			Action:    secretGetCommandAction,
			Meta:      meta,
		}).Build(),
	)
}
