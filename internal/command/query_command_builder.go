// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/awsassist/awsassist/internal/meta"
)

// QueryCommandBuilder constructs a cli.Command for the listing and lookup
// subcommands using a consistent pattern. The builder wires metadata, adds
// the tldr/schema flags and the query flags.
type QueryCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (qcb *QueryCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      qcb.Name,
		Usage:     qcb.Usage,
		UsageText: qcb.UsageText,
		Metadata: map[string]any{
			"meta": qcb.Meta,
		},
		Flags: append(qcb.Flags, append([]cli.Flag{
			tldrFlag,
			schemaFlag,
		}, NewQueryFlags()...)...),
		Action: qcb.Action,
	}
}

// ActionCommandBuilder constructs a cli.Command for subcommands that change
// something rather than list it. Destructive ones get the --yes flag.
type ActionCommandBuilder struct {
	Name        string
	Usage       string
	UsageText   string
	Flags       []cli.Flag
	Destructive bool
	Action      func(context.Context, *cli.Command) error
	Meta        meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (acb *ActionCommandBuilder) Build() *cli.Command {
	flags := append([]cli.Flag{tldrFlag}, acb.Flags...)
	if acb.Destructive {
		flags = append(flags, yesFlag)
	}
	return &cli.Command{
		Name:      acb.Name,
		Usage:     acb.Usage,
		UsageText: acb.UsageText,
		Metadata: map[string]any{
			"meta": acb.Meta,
		},
		Flags:  flags,
		Action: acb.Action,
	}
}

// groupCommand is a service command holding subcommands.
func groupCommand(name, usage string, m meta.Meta, subs ...*cli.Command) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Metadata: map[string]any{
			"meta": m,
		},
		Commands: subs,
	}
}
