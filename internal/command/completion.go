// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/awsassist/awsassist/internal/meta"
)

const bashCompletionScript = `# bash completion for awsassist
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_awsassist()
{
    local cur prev svc sub
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    local global="--profile -p --region -r --role-arn --endpoint --max-attempts --help --version"
    local query="--attrs -a --color -c --filter -f --local -l --output -o --padding --sort -s --titles -t --schema"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "account cc cfn cp iam lambda s3 secret completion $global" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    svc=${COMP_WORDS[1]}
    if [[ ${COMP_CWORD} -eq 2 ]]; then
        case "$svc" in
        cc)     COMPREPLY=( $(compgen -W "repos branches repo" -- "$cur") ) ;;
        cfn)    COMPREPLY=( $(compgen -W "params" -- "$cur") ) ;;
        cp)     COMPREPLY=( $(compgen -W "pipelines pipeline state" -- "$cur") ) ;;
        iam)    COMPREPLY=( $(compgen -W "roles create-role attach policy put-policy" -- "$cur") ) ;;
        lambda) COMPREPLY=( $(compgen -W "invoke" -- "$cur") ) ;;
        s3)     COMPREPLY=( $(compgen -W "buckets ls folders versions exists size deleted prev-version get put mb rb empty rm-folder" -- "$cur") ) ;;
        secret) COMPREPLY=( $(compgen -W "get" -- "$cur") ) ;;
        completion) COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") ) ;;
        account) COMPREPLY=( $(compgen -W "$query $global" -- "$cur") ) ;;
        esac
        return 0
    fi

    sub=${COMP_WORDS[2]}
    local opts="$global"
    case "$svc/$sub" in
    cc/*|cfn/*|cp/*|iam/roles|s3/buckets|s3/ls|s3/folders|s3/versions)
        opts="$opts $query"
        ;;
    esac
    case "$svc/$sub" in
    iam/roles)      opts="$opts --prefix" ;;
    iam/create-role) opts="$opts --description -d" ;;
    iam/put-policy) opts="$opts --diff --color -c" ;;
    lambda/invoke)  opts="$opts --payload --sync" ;;
    s3/size)        opts="$opts --human -H" ;;
    s3/get)         opts="$opts --version" ;;
    s3/mb)          opts="$opts --location" ;;
    s3/rb|s3/empty|s3/rm-folder) opts="$opts --yes -y" ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    case "$svc/$sub" in
    s3/get|s3/put|iam/put-policy)
        COMPREPLY=( $(compgen -f -- "$cur") )
        ;;
    esac
    return 0
}

complete -F _awsassist awsassist
`

const zshCompletionScript = `#compdef awsassist

_awsassist() {
  local -a cmds
  cmds=(
    'account:caller account id, alias and region'
    'cc:CodeCommit queries'
    'cfn:CloudFormation queries'
    'cp:CodePipeline queries'
    'iam:IAM roles and inline policies'
    'lambda:Lambda invocation'
    's3:S3 buckets and objects'
    'secret:Secrets Manager values'
    'completion:generate shell completion script'
  )

  local -a global
  global=(
  '(-p --profile)'{-p,--profile}'[shared config profile]:profile'
  '(-r --region)'{-r,--region}'[AWS region]:region'
  '--role-arn[role to assume]:arn'
  '--endpoint[base endpoint URL]:url'
  '--max-attempts[maximum attempts per call]:n'
  )

  local -a query
  query=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-l --local)'{-l,--local}'[local timestamps]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '--padding[column padding]:n'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--schema[dump schema]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'awsassist commands' cmds
    return
  fi

  if (( CURRENT == 3 )); then
    case $words[2] in
      cc) _values 'subcommand' repos branches repo ;;
      cfn) _values 'subcommand' params ;;
      cp) _values 'subcommand' pipelines pipeline state ;;
      iam) _values 'subcommand' roles create-role attach policy put-policy ;;
      lambda) _values 'subcommand' invoke ;;
      s3) _values 'subcommand' buckets ls folders versions exists size deleted prev-version get put mb rb empty rm-folder ;;
      secret) _values 'subcommand' get ;;
      completion) _values 'shell' bash zsh ;;
      account) _arguments $global $query ;;
    esac
    return
  fi

  case "$words[2]/$words[3]" in
    cc/*|cfn/*|cp/*|s3/buckets|s3/ls|s3/folders|s3/versions)
      _arguments $global $query '*:argument' ;;
    iam/roles)
      _arguments $global $query '--prefix[path prefix]:prefix' ;;
    iam/put-policy)
      _arguments $global '--diff[show the change and stop]' '(-c --color)'{-c,--color}'[color the diff]' '*:file:_files' ;;
    lambda/invoke)
      _arguments $global '--payload[JSON payload]:payload' '--sync[wait for the result]' ;;
    s3/get|s3/put)
      _arguments $global '--version[object version]:id' '*:file:_files' ;;
    s3/rb|s3/empty|s3/rm-folder)
      _arguments $global '(-y --yes)'{-y,--yes}'[do not ask]' ;;
    *)
      _arguments $global '*:argument' ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _awsassist awsassist
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	w := Writer(cmd)
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print usage.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			fmt.Fprintln(ErrWriter(cmd), "usage: awsassist completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "awsassist completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
