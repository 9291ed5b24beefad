// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"
)

// ErrUsage marks a command invoked with the wrong positional arguments.
var ErrUsage = errors.New("usage")

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "json", "raw", "yaml"}
	s, _ := value.(string)
	if !slices.Contains(validOutputFlagValues, s) {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}

func NonNegativeValidator(value any) error {
	if n, ok := value.(int); ok && n < 0 {
		return fmt.Errorf("must not be negative, got %d", n)
	}
	return nil
}

// Positional returns the command's positional arguments after checking there
// are at least required and at most len(names) of them. names label the
// arguments in the usage error; optional ones are bracketed by the caller.
func Positional(cmd *cli.Command, required int, names ...string) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) < required || len(args) > len(names) {
		return nil, fmt.Errorf("%w: %s %s", ErrUsage, cmd.FullName(), strings.Join(names, " "))
	}
	return args, nil
}

// arg returns args[i], or "" when fewer were given.
func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
