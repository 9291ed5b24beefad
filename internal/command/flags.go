// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var (
	schemaFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "schema",
		Usage:       "dump the schema",
		HideDefault: true,
	}

	tldrFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}

	yesFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "yes",
		Aliases:     []string{"y"},
		Usage:       "do not ask for confirmation",
		HideDefault: true,
	}
)

// NewQueryFlags returns the result shaping flags shared by every query
// command.
func NewQueryFlags() (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.BoolFlag{
			Name:    "local",
			Aliases: []string{"l"},
			Usage:   "show local timestamps",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:  "padding",
			Usage: "column padding for text output",
			Value: 2,
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewAWSFlags returns the root flags that select the AWS profile, region,
// role and endpoint. path is the config file consulted after the env vars.
func NewAWSFlags(path string) []cli.Flag {
	return []cli.Flag{
		NameSpacedValueChainFlagFromConfigFile("aws", path, &cli.StringFlag{
			Name:    "endpoint",
			Usage:   "base endpoint URL for every service, e.g. LocalStack",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_ENDPOINT_URL")),
		}),
		&cli.IntFlag{
			Name:  "max-attempts",
			Usage: "maximum attempts per API call, 0 keeps the SDK default",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_MAX_ATTEMPTS"),
			),
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		NameSpacedValueChainFlagFromConfigFile("aws", path, &cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "shared config profile",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_PROFILE")),
		}),
		NameSpacedValueChainFlagFromConfigFile("aws", path, &cli.StringFlag{
			Name:    "region",
			Aliases: []string{"r"},
			Usage:   "AWS region",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_REGION"),
				cli.EnvVar("AWS_DEFAULT_REGION"),
			),
		}),
		NameSpacedValueChainFlagFromConfigFile("aws", path, &cli.StringFlag{
			Name:    "role-arn",
			Usage:   "role to assume with the resolved credentials",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWSASSIST_ROLE_ARN")),
		}),
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain. Without a config file the flag is
// returned untouched.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if path == "" {
		return flag
	}

	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// pathHas reports whether target is an executable on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
