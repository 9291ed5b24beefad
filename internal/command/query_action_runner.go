// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/awsassist/awsassist/internal/config"
	"github.com/awsassist/awsassist/internal/log"
)

// QueryActionRunner[T] encapsulates the common query action pattern for all
// query subcommands. It handles the short-circuit flags, BuildAttrs, schema
// dumping and output emission, with data fetching provided by FetchFn.
type QueryActionRunner[T any] struct {
	CommandName  string
	SchemaType   reflect.Type
	DefaultAttrs []string
	FetchFn      func(context.Context, *cli.Command) ([]T, error)

	// ServerSideKey is the one filter key FetchFn pushes to the service as
	// a prefix. Empty means server-side filter terms are rejected.
	ServerSideKey string
}

// Run executes the query action with the provided context and command.
func (qar *QueryActionRunner[T]) Run(
	ctx context.Context,
	cmd *cli.Command,
) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", qar.CommandName)
	if m.Namespace != "" {
		config.Config.Namespace = m.Namespace
	}

	if ShortCircuitTLDR(ctx, cmd, qar.CommandName) {
		return nil
	}
	if DumpSchemaIfRequested(cmd, qar.SchemaType) {
		return nil
	}

	if _, _, err := serverSidePrefix(cmd, qar.ServerSideKey); err != nil {
		return err
	}

	attrs := BuildAttrs(cmd, qar.DefaultAttrs...)
	log.Debugf("attrs: %v", attrs)

	results, err := qar.FetchFn(ctx, cmd)
	if err != nil {
		return err
	}
	if results == nil {
		results = []T{}
	}

	return EmitJSON(results, attrs, cmd)
}

// NewQueryActionRunner creates a QueryActionRunner with the provided
// configuration.
func NewQueryActionRunner[T any](
	commandName string,
	schemaType reflect.Type,
	defaultAttrs []string,
	fetchFn func(context.Context, *cli.Command) ([]T, error),
) *QueryActionRunner[T] {
	return &QueryActionRunner[T]{
		CommandName:  commandName,
		SchemaType:   schemaType,
		DefaultAttrs: defaultAttrs,
		FetchFn:      fetchFn,
	}
}

// PushDown marks key as the filter key FetchFn applies server-side.
func (qar *QueryActionRunner[T]) PushDown(key string) *QueryActionRunner[T] {
	qar.ServerSideKey = key
	return qar
}

// one wraps a single-result fetch for QueryActionRunner.
func one[T any](fetch func(context.Context, *cli.Command) (*T, error)) func(context.Context, *cli.Command) ([]T, error) {
	return func(ctx context.Context, cmd *cli.Command) ([]T, error) {
		v, err := fetch(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return []T{*v}, nil
	}
}
