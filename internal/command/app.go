// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/awsassist/awsassist/internal/config"
	"github.com/awsassist/awsassist/internal/log"
	"github.com/awsassist/awsassist/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// The arg[1] immediately following the binary (arg[0]) is the service
	// command and also represents the namespace key to be used when retrieving
	// config values. arg[1] could be -h/--help, so ignore it if it appears to be
	// a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, err := config.Load()
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		return nil, fmt.Errorf("load config: %w", err)
	}
	config.Config.Namespace = ns
	log.Debugf("config loaded: source=%s, namespace=%s", cfg.Source, ns)

	m := meta.Meta{
		Args:      args,
		Config:    cfg,
		Context:   ctx,
		Namespace: ns,
	}

	app := &cli.Command{
		Name:  "awsassist",
		Usage: "AWS assistant",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "awsassist version info",
				HideDefault: true,
			},
		}, NewAWSFlags(m.ConfigSource())...),
		Metadata: map[string]any{
			"meta": m,
		},
	}

	app.Commands = append(app.Commands,
		accountCommandBuilder(m),
		ccCommandBuilder(m),
		cfnCommandBuilder(m),
		cpCommandBuilder(m),
		iamCommandBuilder(m),
		lambdaCommandBuilder(m),
		s3CommandBuilder(m),
		secretCommandBuilder(m),
		completionCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	sortFlags(app)

	return app, nil
}

func sortFlags(cmd *cli.Command) {
	sort.Slice(cmd.Flags, func(i, j int) bool {
		return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
	})
	for _, sub := range cmd.Commands {
		sortFlags(sub)
	}
}
