// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for awsassist's user
// configuration. The configuration is a YAML document named awsassist.yaml in
// the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/awsassist.yaml or $HOME/.config/awsassist.yaml
//   - macOS: $HOME/Library/Application Support/awsassist.yaml
//   - Windows: %APPDATA%/awsassist.yaml
//
// AWSASSIST_CFG_FILE overrides the location. Keys are addressed with dotted
// paths and, when a Namespace is set (the running subcommand), the namespaced
// key wins over the bare one:
//
//	region: eu-west-1
//	s3:
//	  region: us-east-1
//	  ls:
//	    defaults: ["--titles", "--sort -lastModified"]
package config
