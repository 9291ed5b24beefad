// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/awsassist/awsassist/internal/log"
	"github.com/awsassist/awsassist/internal/meta"
)

// lambdaInvokeCommandAction invokes a function. The payload is sent as a
// JSON value; --sync waits for and prints the function's result.
func lambdaInvokeCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := Positional(cmd, 1, "<function>")
	if err != nil {
		return err
	}

	var body any
	if p := cmd.String("payload"); p != "" {
		raw, err := readJSONArg(cmd, p)
		if err != nil {
			return fmt.Errorf("payload: %w", err)
		}
		body = json.RawMessage(raw)
	}

	c, err := lambdaClient(ctx, cmd)
	if err != nil {
		return err
	}

	if !cmd.Bool("sync") {
		if err := c.Invoke(ctx, args[0], body); err != nil {
			return err
		}
		log.Infof("invoked: function=%s", args[0])
		return nil
	}

	result, err := c.InvokeSync(ctx, args[0], body)
	if err != nil {
		return err
	}
	if s, ok := result.(string); ok {
		fmt.Fprintln(Writer(cmd), s)
		return nil
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("render result: %w", err)
	}
	fmt.Fprintln(Writer(cmd), string(out))
	return nil
}

func lambdaCommandBuilder(meta meta.Meta) *cli.Command {
	return groupCommand("lambda", "Lambda invocation", meta,
		(&ActionCommandBuilder{
			Name:      "invoke",
			Usage:     "invoke a function",
			UsageText: "awsassist lambda invoke <function> [--payload json|@file] [--sync]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "payload",
					Usage: "JSON payload, or @file, or @- for stdin",
				},
				&cli.BoolFlag{
					Name:  "sync",
					Usage: "wait for the result",
				},
			},
			Action: lambdaInvokeCommandAction,
			Meta:   meta,
		}).Build(),
	)
}
