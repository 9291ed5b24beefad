// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/awsassist/awsassist/internal/filters"
	"github.com/awsassist/awsassist/internal/log"
)

// Augmenter[T] is a callback function that customizes request options before
// the listing call. It receives the context, command, and a pointer to the
// options object, allowing mutation of options based on command flags.
// Return an error to abort the listing.
type Augmenter[T any] func(
	context.Context,
	*cli.Command,
	*T,
) error

// listScope is the request side of a prefix-scoped listing: the s3 key
// prefix or the iam role path prefix.
type listScope struct {
	Prefix string
}

// serverSidePrefix returns the value of the server-side starts-with filter
// (_key^value) on key, and whether there was one. Any other server-side
// term, or a second one, is a usage error since nothing would apply it. An
// empty key accepts no server-side terms at all.
func serverSidePrefix(cmd *cli.Command, key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	for _, f := range filters.BuildFilters(cmd.String("filter")) {
		if !f.ServerSide {
			continue
		}
		if key == "" || f.Key != key || f.Negate || f.Operand != "^" || found {
			return "", false, fmt.Errorf("%w: filter %s cannot be applied by the service, drop the leading _",
				ErrUsage, termString(f))
		}
		value, found = f.Value, true
	}
	return value, found, nil
}

func termString(f filters.Filter) string {
	neg := ""
	if f.Negate {
		neg = "!"
	}
	return "_" + f.Key + neg + f.Operand + f.Value
}

// prefixAugmenter returns an Augmenter that narrows scope.Prefix with a
// server-side _<key>^value filter. An explicit prefix and a different
// filter prefix conflict.
func prefixAugmenter(key string) Augmenter[listScope] {
	return func(_ context.Context, cmd *cli.Command, scope *listScope) error {
		v, ok, err := serverSidePrefix(cmd, key)
		if err != nil || !ok {
			return err
		}
		if scope.Prefix != "" && scope.Prefix != v {
			return fmt.Errorf("%w: prefix %q conflicts with filter _%s^%s", ErrUsage, scope.Prefix, key, v)
		}
		scope.Prefix = v
		log.Debugf("scope after augmentation: key=%s, prefix=%s", key, v)
		return nil
	}
}
