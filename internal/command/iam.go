// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/awsassist/awsassist/internal/differ"
	"github.com/awsassist/awsassist/internal/iam"
	"github.com/awsassist/awsassist/internal/log"
	"github.com/awsassist/awsassist/internal/meta"
)

var iamRolesDefaultAttrs = []string{"name", "path", "createDate"}

func iamRolesCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner(
		"iam",
		reflect.TypeOf(iam.Role{}),
		iamRolesDefaultAttrs,
		func(ctx context.Context, cmd *cli.Command) ([]iam.Role, error) {
			if _, err := Positional(cmd, 0); err != nil {
				return nil, err
			}
			scope := listScope{Prefix: cmd.String("prefix")}
			if err := prefixAugmenter("path")(ctx, cmd, &scope); err != nil {
				return nil, err
			}
			c, err := iamClient(ctx, cmd)
			if err != nil {
				return nil, err
			}
			return c.ListRoles(ctx, scope.Prefix)
		},
	).PushDown("path").Run(ctx, cmd)
}

func iamCreateRoleCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := Positional(cmd, 1, "<role>")
	if err != nil {
		return err
	}
	c, err := iamClient(ctx, cmd)
	if err != nil {
		return err
	}
	role, err := c.CreateRole(ctx, args[0], cmd.String("description"))
	if err != nil {
		return err
	}
	fmt.Fprintln(Writer(cmd), role.Arn)
	return nil
}

func iamAttachCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := Positional(cmd, 2, "<role>", "<policy>")
	if err != nil {
		return err
	}
	c, err := iamClient(ctx, cmd)
	if err != nil {
		return err
	}
	return c.AttachManagedPolicy(ctx, args[0], args[1])
}

func iamPolicyCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := Positional(cmd, 2, "<role>", "<policy-name>")
	if err != nil {
		return err
	}
	c, err := iamClient(ctx, cmd)
	if err != nil {
		return err
	}
	doc, ok, err := c.RolePolicy(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("role %s has no inline policy %s", args[0], args[1])
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, doc, "", "  "); err != nil {
		pretty.Reset()
		pretty.Write(doc)
	}
	fmt.Fprintln(Writer(cmd), pretty.String())
	return nil
}

// iamPutPolicyCommandAction replaces an inline policy. With --diff it only
// prints the change against the current document.
func iamPutPolicyCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := Positional(cmd, 3, "<role>", "<policy-name>", "<json|@file>")
	if err != nil {
		return err
	}
	doc, err := readJSONArg(cmd, args[2])
	if err != nil {
		return fmt.Errorf("policy document: %w", err)
	}
	c, err := iamClient(ctx, cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("diff") {
		return printPolicyDiff(ctx, cmd, c, args[0], args[1], doc)
	}

	if err := c.PutRolePolicy(ctx, args[0], args[1], json.RawMessage(doc)); err != nil {
		return err
	}
	log.Infof("policy put: role=%s, policy=%s", args[0], args[1])
	return nil
}

func printPolicyDiff(ctx context.Context, cmd *cli.Command, c *iam.Client, role, name string, doc []byte) error {
	current, ok, err := c.RolePolicy(ctx, role, name)
	if err != nil {
		return err
	}
	if !ok {
		current = differ.Empty
	}

	rendered, changed, err := differ.Diff(current, doc, cmd.Bool("color"))
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintln(Writer(cmd), "no changes")
		return nil
	}
	fmt.Fprint(Writer(cmd), rendered)
	return nil
}

func iamCommandBuilder(meta meta.Meta) *cli.Command {
	return groupCommand("iam", "IAM roles and inline policies", meta,
		(&QueryCommandBuilder{
			Name:      "roles",
			Usage:     "list roles",
			UsageText: "awsassist iam roles [--prefix /path/] [options]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "prefix",
					Usage: "path prefix of the roles to list, e.g. /service-role/",
				},
			},
			Action: iamRolesCommandAction,
			Meta:   meta,
		}).Build(),
		(&ActionCommandBuilder{
			Name:      "create-role",
			Usage:     "create a role the caller's account may assume",
			UsageText: "awsassist iam create-role <role> [--description text]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "description",
					Aliases: []string{"d"},
					Usage:   "role description",
				},
			},
			Action: iamCreateRoleCommandAction,
			Meta:   meta,
		}).Build(),
		(&ActionCommandBuilder{
			Name:      "attach",
			Usage:     "attach an AWS managed policy to a role",
			UsageText: "awsassist iam attach <role> <policy>",
			Action:    iamAttachCommandAction,
			Meta:      meta,
		}).Build(),
		(&ActionCommandBuilder{
			Name:      "policy",
			Usage:     "show an inline role policy",
			UsageText: "awsassist iam policy <role> <policy-name>",
			Action:    iamPolicyCommandAction,
			Meta:      meta,
		}).Build(),
		(&ActionCommandBuilder{
			Name:      "put-policy",
			Usage:     "create or replace an inline role policy",
			UsageText: "awsassist iam put-policy <role> <policy-name> <json|@file> [--diff]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "diff",
					Usage: "show the change against the current policy and stop",
				},
				&cli.BoolFlag{
					Name:    "color",
					Aliases: []string{"c"},
					Usage:   "color the diff",
				},
			},
			Action: iamPutPolicyCommandAction,
			Meta:   meta,
		}).Build(),
	)
}
