// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/awsassist/awsassist/internal/codepipeline"
)

// runCmd runs a command built from flags and action with args, collecting
// stdout.
func runCmd(t *testing.T, flags []cli.Flag, action cli.ActionFunc, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := &cli.Command{
		Name:      "test",
		Flags:     flags,
		Action:    action,
		Writer:    &out,
		ErrWriter: &bytes.Buffer{},
		Reader:    strings.NewReader(stdin),
	}
	err := cmd.Run(context.Background(), append([]string{"test"}, args...))
	return out.String(), err
}

func TestPositional(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		required int
		names    []string
		want     []string
		wantErr  bool
	}{
		{name: "none expected", args: nil, required: 0},
		{name: "none expected, one given", args: []string{"x"}, required: 0, wantErr: true},
		{name: "required present", args: []string{"b"}, required: 1, names: []string{"<bucket>"}, want: []string{"b"}},
		{name: "optional present", args: []string{"b", "p/"}, required: 1, names: []string{"<bucket>", "[prefix]"}, want: []string{"b", "p/"}},
		{name: "optional absent", args: []string{"b"}, required: 1, names: []string{"<bucket>", "[prefix]"}, want: []string{"b"}},
		{name: "required missing", args: nil, required: 1, names: []string{"<bucket>"}, wantErr: true},
		{name: "too many", args: []string{"a", "b", "c"}, required: 2, names: []string{"<bucket>", "<key>"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			_, err := runCmd(t, nil, func(_ context.Context, c *cli.Command) error {
				var perr error
				got, perr = Positional(c, tt.required, tt.names...)
				return perr
			}, "", tt.args...)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUsage)
				return
			}
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArg(t *testing.T) {
	assert.Equal(t, "b", arg([]string{"a", "b"}, 1))
	assert.Equal(t, "", arg([]string{"a"}, 1))
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      FlagValidatorType
		value   any
		wantErr bool
	}{
		{name: "output text", fn: OutputValidator, value: "text"},
		{name: "output yaml", fn: OutputValidator, value: "yaml"},
		{name: "output bogus", fn: OutputValidator, value: "xml", wantErr: true},
		{name: "output not a string", fn: OutputValidator, value: 3, wantErr: true},
		{name: "zero", fn: NonNegativeValidator, value: 0},
		{name: "negative", fn: NonNegativeValidator, value: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FlagValidators(tt.value, tt.fn)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfirm_Prompt(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: "  yes  \n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "", want: false},
		{input: "y", want: true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var prompt bytes.Buffer
			got, err := confirm(strings.NewReader(tt.input), &prompt, "delete it")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "delete it? [y/N] ", prompt.String())
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name    string
		tty     bool
		args    []string
		stdin   string
		want    bool
		wantErr bool
	}{
		{name: "yes flag skips prompt", tty: false, args: []string{"--yes"}, want: true},
		{name: "no terminal", tty: false, wantErr: true},
		{name: "terminal accepts", tty: true, stdin: "y\n", want: true},
		{name: "terminal declines", tty: true, stdin: "n\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := stdinIsTerminal
			stdinIsTerminal = func() bool { return tt.tty }
			t.Cleanup(func() { stdinIsTerminal = orig })

			var got bool
			_, err := runCmd(t, []cli.Flag{yesFlag}, func(_ context.Context, c *cli.Command) error {
				var cerr error
				got, cerr = Confirm(c, "empty bucket b")
				return cerr
			}, tt.stdin, tt.args...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAbortUnless(t *testing.T) {
	boom := errors.New("boom")
	assert.ErrorIs(t, abortUnless(nil), ErrAborted)
	assert.ErrorIs(t, abortUnless(boom), boom)
}

func TestReadJSONArg(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "policy.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"Version":"2012-10-17"}`), 0o600))

	tests := []struct {
		name    string
		value   string
		stdin   string
		want    string
		wantErr bool
	}{
		{name: "inline", value: `{"a":1}`, want: `{"a":1}`},
		{name: "file", value: "@" + file, want: `{"Version":"2012-10-17"}`},
		{name: "stdin", value: "@-", stdin: `[1,2]`, want: `[1,2]`},
		{name: "missing file", value: "@" + filepath.Join(dir, "nope.json"), wantErr: true},
		{name: "not json", value: "hello", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []byte
			_, err := runCmd(t, nil, func(_ context.Context, c *cli.Command) error {
				var rerr error
				got, rerr = readJSONArg(c, tt.value)
				return rerr
			}, tt.stdin)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestPrefixAugmenter(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		filter  string
		start   string
		want    string
		wantErr bool
	}{
		{name: "no filter", key: "key", filter: "", want: ""},
		{name: "server side starts with", key: "key", filter: "_key^logs/", want: "logs/"},
		{name: "client side filter left alone", key: "key", filter: "key^logs/", want: ""},
		{name: "client terms beside the prefix", key: "path", filter: "name~svc,_path^/svc/", want: "/svc/"},
		{name: "explicit prefix matches filter", key: "key", filter: "_key^logs/", start: "logs/", want: "logs/"},
		{name: "explicit prefix kept without filter", key: "key", filter: "", start: "data/", want: "data/"},
		{name: "explicit prefix conflicts", key: "key", filter: "_key^other/", start: "logs/", wantErr: true},
		{name: "negated rejected", key: "key", filter: "_key!^logs/tmp", wantErr: true},
		{name: "other operand rejected", key: "key", filter: "_key=logs/", wantErr: true},
		{name: "other key rejected", key: "path", filter: "_key^logs/", wantErr: true},
		{name: "second term rejected", key: "path", filter: "_path^/svc/,_path^/x/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := listScope{Prefix: tt.start}
			_, err := runCmd(t, NewQueryFlags(), func(ctx context.Context, c *cli.Command) error {
				return prefixAugmenter(tt.key)(ctx, c, &scope)
			}, "", "--filter", tt.filter)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, scope.Prefix)
		})
	}
}

func TestStateRows(t *testing.T) {
	stages := []codepipeline.StageState{
		{Name: "Source", Actions: []codepipeline.ActionState{{Name: "Checkout", Status: "Succeeded"}}},
		{Name: "Deploy", Actions: []codepipeline.ActionState{{Name: "Release", Status: "Failed"}}},
	}

	assert.Equal(t, []stateRow{
		{Stage: "pipeline", Status: "Failed"},
		{Stage: "Source", Action: "Checkout", Status: "Succeeded"},
		{Stage: "Deploy", Action: "Release", Status: "Failed"},
	}, stateRows(stages))
}

type row struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

func TestQueryActionRunner(t *testing.T) {
	fetchErr := errors.New("fetch failed")

	tests := []struct {
		name    string
		fetch   func(context.Context, *cli.Command) ([]row, error)
		args    []string
		want    []map[string]any
		wantErr error
	}{
		{
			name: "rows rendered as json",
			fetch: func(context.Context, *cli.Command) ([]row, error) {
				return []row{{Name: "b", Size: 2}, {Name: "a", Size: 1}}, nil
			},
			args: []string{"--output", "json", "--sort", "name"},
			want: []map[string]any{{"name": "a"}, {"name": "b"}},
		},
		{
			name: "extra attrs",
			fetch: func(context.Context, *cli.Command) ([]row, error) {
				return []row{{Name: "a", Size: 1}}, nil
			},
			args: []string{"--output", "json", "--attrs", "size"},
			want: []map[string]any{{"name": "a", "size": float64(1)}},
		},
		{
			name: "nil result is an empty list",
			fetch: func(context.Context, *cli.Command) ([]row, error) {
				return nil, nil
			},
			args: []string{"--output", "json"},
			want: []map[string]any{},
		},
		{
			name: "fetch error",
			fetch: func(context.Context, *cli.Command) ([]row, error) {
				return nil, fetchErr
			},
			args:    []string{"--output", "json"},
			wantErr: fetchErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := append([]cli.Flag{schemaFlag, tldrFlag}, NewQueryFlags()...)
			out, err := runCmd(t, flags, func(ctx context.Context, c *cli.Command) error {
				return NewQueryActionRunner("test", reflect.TypeOf(row{}), []string{"name"}, tt.fetch).Run(ctx, c)
			}, "", tt.args...)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			var got []map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryActionRunner_ServerSideTerms(t *testing.T) {
	fetched := false
	fetch := func(context.Context, *cli.Command) ([]row, error) {
		fetched = true
		return []row{{Name: "a"}}, nil
	}
	flags := append([]cli.Flag{schemaFlag, tldrFlag}, NewQueryFlags()...)

	_, err := runCmd(t, flags, func(ctx context.Context, c *cli.Command) error {
		return NewQueryActionRunner("test", reflect.TypeOf(row{}), []string{"name"}, fetch).Run(ctx, c)
	}, "", "--filter", "_name=a")
	assert.ErrorIs(t, err, ErrUsage)
	assert.False(t, fetched)

	_, err = runCmd(t, flags, func(ctx context.Context, c *cli.Command) error {
		return NewQueryActionRunner("test", reflect.TypeOf(row{}), []string{"name"}, fetch).PushDown("name").Run(ctx, c)
	}, "", "--output", "json", "--filter", "_name^a")
	require.NoError(t, err)
	assert.True(t, fetched)
}

func TestOne(t *testing.T) {
	fetch := one(func(context.Context, *cli.Command) (*row, error) {
		return &row{Name: "solo"}, nil
	})
	got, err := fetch(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []row{{Name: "solo"}}, got)

	boom := errors.New("boom")
	fetch = one(func(context.Context, *cli.Command) (*row, error) {
		return nil, boom
	})
	_, err = fetch(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
}
