// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

// docsgen writes one markdown and one tldr page per awsassist subcommand,
// taken from the live command tree.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/awsassist/awsassist/internal/command"
)

// Flag is one documented flag.
type Flag struct {
	Syntax      string
	Description string
	Default     string
}

// Subcommand is one documented leaf command.
type Subcommand struct {
	ID          string
	Name        string
	Short       string
	Usage       string
	Flags       []Flag
	GlobalFlags []Flag
}

type TemplateData struct {
	Subcommand
	Date    string
	Version string
}

type Outputs struct {
	Template *template.Template
	Folder   string
	Prefix   string
	Suffix   string
}

var mdTemplate = template.Must(template.New("md").Parse(`# awsassist {{.Name}}

{{.Short}}

` + "```" + `
{{.Usage}}
` + "```" + `

## Flags
{{range .Flags}}
- ` + "`{{.Syntax}}`" + ` {{.Description}}{{if .Default}} (default {{.Default}}){{end}}
{{- end}}

## Global flags
{{range .GlobalFlags}}
- ` + "`{{.Syntax}}`" + ` {{.Description}}
{{- end}}

_Generated {{.Date}} for {{.Version}}._
`))

var tldrTemplate = template.Must(template.New("tldr").Parse(`# awsassist {{.Name}}

> {{.Short}}

- Usage:

` + "`{{.Usage}}`" + `
`))

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs-dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	app, err := command.InitApp(context.Background(), []string{"awsassist"})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	globals := flags(app.Flags)
	types := []Outputs{
		{Template: mdTemplate, Folder: filepath.Join(docs, "commands"), Suffix: ".md"},
		{Template: tldrTemplate, Folder: filepath.Join(docs, "tldr"), Prefix: "awsassist-", Suffix: ".md"},
	}

	for _, sub := range leaves(app, nil) {
		sub.GlobalFlags = globals
		metadata := TemplateData{
			Subcommand: sub,
			Date:       time.Now().Format("January 2, 2006"),
			Version:    getVersion(),
		}

		for _, t := range types {
			if err := os.MkdirAll(t.Folder, 0o755); err != nil {
				panic(err)
			}

			path := filepath.Join(t.Folder, t.Prefix+sub.ID+t.Suffix)
			fmt.Println("Generating", path)
			file, err := os.Create(path)
			if err != nil {
				panic(err)
			}
			if err := t.Template.Execute(file, metadata); err != nil {
				panic(err)
			}
			file.Close()
		}
	}
}

// leaves returns every command without subcommands below cmd. path holds
// the names of cmd's ancestors below the root.
func leaves(cmd *cli.Command, path []string) []Subcommand {
	var out []Subcommand
	for _, c := range cmd.Commands {
		p := append(append([]string{}, path...), c.Name)
		if len(c.Commands) > 0 {
			out = append(out, leaves(c, p)...)
			continue
		}
		out = append(out, Subcommand{
			ID:    strings.Join(p, "-"),
			Name:  strings.Join(p, " "),
			Short: c.Usage,
			Usage: c.UsageText,
			Flags: flags(c.Flags),
		})
	}
	return out
}

func flags(in []cli.Flag) []Flag {
	out := make([]Flag, 0, len(in))
	for _, f := range in {
		names := f.Names()
		syntax := make([]string, 0, len(names))
		for _, n := range names {
			if len(n) == 1 {
				syntax = append(syntax, "-"+n)
			} else {
				syntax = append(syntax, "--"+n)
			}
		}
		flag := Flag{Syntax: strings.Join(syntax, ", ")}
		if d, ok := f.(cli.DocGenerationFlag); ok {
			flag.Description = d.GetUsage()
			flag.Default = d.GetDefaultText()
		}
		out = append(out, flag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Syntax < out[j].Syntax })
	return out
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
