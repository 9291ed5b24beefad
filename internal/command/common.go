// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"reflect"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/awsassist/awsassist/internal/attrs"
	"github.com/awsassist/awsassist/internal/meta"
	"github.com/awsassist/awsassist/internal/output"
)

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// DumpSchemaIfRequested writes the schema for the provided type when --schema
// is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type) bool {
	if cmd.Bool("schema") {
		output.DumpSchema(t, Writer(cmd))
		return true
	}
	return false
}

// EmitJSON marshals results and passes them to the common output routine.
func EmitJSON(results any, al attrs.AttrList, cmd *cli.Command) error {
	raw, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	return output.SliceDiceSpit(raw, al, cmd, Writer(cmd), nil)
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr awsassist <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "awsassist", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// Writer returns the root command's writer, stdout by default.
func Writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// ErrWriter returns the root command's error writer, stderr by default.
func ErrWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

// stdinIsTerminal is a variable so tests can pretend to be interactive.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Confirm asks before a destructive operation. --yes skips the prompt.
// Without --yes a non-interactive stdin is refused rather than read.
func Confirm(cmd *cli.Command, prompt string) (bool, error) {
	if cmd.Bool("yes") {
		return true, nil
	}
	if !stdinIsTerminal() {
		return false, fmt.Errorf("%s: stdin is not a terminal, pass --yes to proceed", prompt)
	}
	reader := cmd.Root().Reader
	if reader == nil {
		reader = os.Stdin
	}
	return confirm(reader, ErrWriter(cmd), prompt)
}

func confirm(r io.Reader, w io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(w, "%s? [y/N] ", prompt)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// readJSONArg returns the JSON document in value, or in the file it names
// when it starts with @. "@-" reads stdin.
func readJSONArg(cmd *cli.Command, value string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case value == "@-":
		reader := cmd.Root().Reader
		if reader == nil {
			reader = os.Stdin
		}
		data, err = io.ReadAll(reader)
	case strings.HasPrefix(value, "@"):
		data, err = os.ReadFile(value[1:])
	default:
		data = []byte(value)
	}
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("not a JSON document: %.40q", string(data))
	}
	return data, nil
}
