// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/awsassist/awsassist/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries the CLI
// arguments, the loaded configuration and the namespace (the service command
// name) used for config lookups.
type Meta struct {
	Args      []string
	Config    config.Type
	Context   context.Context
	Namespace string
}

// ConfigSource returns the path of the loaded config file, or "" when none
// was found.
func (m Meta) ConfigSource() string {
	return m.Config.Source
}
