// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/awsassist/awsassist/internal/command"
	"github.com/awsassist/awsassist/internal/config"
	"github.com/awsassist/awsassist/internal/log"
	"github.com/awsassist/awsassist/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for a leading --version/-v and returns whether it was
// handled. Subcommand flags named version (s3 get --version) are left alone.
func handleVersion(args []string) bool {
	if len(args) > 1 && (args[1] == "--version" || args[1] == "-v") {
		fmt.Println(version.Version)
		return true
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		// Short-circuit completion: pass args directly.
		return args
	}
	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	if !slices.Contains(args, "--help") && !slices.Contains(args, "-h") {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly expands an @set argument from the config file.
func processSetOnly(args []string) []string {
	return expandSet(args, func(key string) []string {
		entries, _ := config.GetStringSlice(key)
		return entries
	})
}

// expandSet replaces the first @set argument after the service command with
// the entries lookup returns for "<service>.<set>". Each entry is split on
// whitespace, so "--output json" becomes two arguments.
func expandSet(args []string, lookup func(string) []string) []string {
	const idx = 2
	if len(args) <= idx {
		return args
	}

	removeIdx := -1
	set := ""
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") && len(a) > 1 {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx == -1 {
		return args
	}

	var expanded []string
	for _, entry := range lookup(args[1] + "." + set) {
		expanded = append(expanded, strings.Fields(entry)...)
	}
	log.Debugf("set expanded: set=%s, args=%v", set, expanded)

	out := make([]string, 0, len(args)-1+len(expanded))
	out = append(out, args[:removeIdx]...)
	out = append(out, expanded...)
	return append(out, args[removeIdx+1:]...)
}
