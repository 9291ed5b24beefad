// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestLeaves(t *testing.T) {
	root := &cli.Command{
		Name: "awsassist",
		Commands: []*cli.Command{
			{Name: "account", Usage: "Show the caller"},
			{
				Name: "s3",
				Commands: []*cli.Command{
					{Name: "ls", Usage: "List objects", UsageText: "awsassist s3 ls <bucket>"},
				},
			},
		},
	}

	got := leaves(root, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "account", got[0].ID)
	assert.Equal(t, "s3-ls", got[1].ID)
	assert.Equal(t, "s3 ls", got[1].Name)
	assert.Equal(t, "awsassist s3 ls <bucket>", got[1].Usage)
}

func TestFlags(t *testing.T) {
	got := flags([]cli.Flag{
		&cli.StringFlag{Name: "region", Aliases: []string{"r"}, Usage: "AWS region"},
		&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip confirmation"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "--region, -r", got[0].Syntax)
	assert.Equal(t, "AWS region", got[0].Description)
	assert.Equal(t, "--yes, -y", got[1].Syntax)
}

func TestTemplates(t *testing.T) {
	data := TemplateData{
		Subcommand: Subcommand{
			ID:          "s3-ls",
			Name:        "s3 ls",
			Short:       "List objects",
			Usage:       "awsassist s3 ls <bucket>",
			Flags:       []Flag{{Syntax: "--output, -o", Description: "Output format", Default: "text"}},
			GlobalFlags: []Flag{{Syntax: "--region, -r", Description: "AWS region"}},
		},
		Date:    "October 16, 2026",
		Version: "1.0.0",
	}

	var md bytes.Buffer
	require.NoError(t, mdTemplate.Execute(&md, data))
	assert.Contains(t, md.String(), "# awsassist s3 ls")
	assert.Contains(t, md.String(), "- `--output, -o` Output format (default text)")
	assert.Contains(t, md.String(), "- `--region, -r` AWS region")

	var tldr bytes.Buffer
	require.NoError(t, tldrTemplate.Execute(&tldr, data))
	assert.Contains(t, tldr.String(), "> List objects")
}
