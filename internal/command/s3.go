// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/awsassist/awsassist/internal/log"
	"github.com/awsassist/awsassist/internal/meta"
	"github.com/awsassist/awsassist/internal/s3"
)

var (
	s3BucketsDefaultAttrs  = []string{"name", "created"}
	s3LsDefaultAttrs       = []string{"key", "size", "lastModified"}
	s3FoldersDefaultAttrs  = []string{"folder"}
	s3VersionsDefaultAttrs = []string{"versionId", "isLatest", "isDeleteMarker", "lastModified"}
)

// ErrAborted is returned when a confirmation prompt is declined.
var ErrAborted = errors.New("aborted")

// folder is the row shape of the folders command.
type folder struct {
	Folder string `json:"folder"`
}

func s3BucketsCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner(
		"s3",
		reflect.TypeOf(s3.Bucket{}),
		s3BucketsDefaultAttrs,
		func(ctx context.Context, cmd *cli.Command) ([]s3.Bucket, error) {
			if _, err := Positional(cmd, 0); err != nil {
				return nil, err
			}
			c, err := s3Client(ctx, cmd)
			if err != nil {
				return nil, err
			}
			return c.ListBuckets(ctx)
		},
	).Run(ctx, cmd)
}

func s3LsCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner(
		"s3",
		reflect.TypeOf(s3.Object{}),
		s3LsDefaultAttrs,
		func(ctx context.Context, cmd *cli.Command) ([]s3.Object, error) {
			args, err := Positional(cmd, 1, "<bucket>", "[prefix]")
			if err != nil {
				return nil, err
			}
			scope := listScope{Prefix: arg(args, 1)}
			if err := prefixAugmenter("key")(ctx, cmd, &scope); err != nil {
				return nil, err
			}
			c, err := s3Client(ctx, cmd)
			if err != nil {
				return nil, err
			}
			return c.ListFiles(ctx, args[0], scope.Prefix)
		},
	).PushDown("key").Run(ctx, cmd)
}

func s3FoldersCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner(
		"s3",
		reflect.TypeOf(folder{}),
		s3FoldersDefaultAttrs,
		func(ctx context.Context, cmd *cli.Command) ([]folder, error) {
			args, err := Positional(cmd, 1, "<bucket>", "[prefix]")
			if err != nil {
				return nil, err
			}
			scope := listScope{Prefix: arg(args, 1)}
			if err := prefixAugmenter("key")(ctx, cmd, &scope); err != nil {
				return nil, err
			}
			c, err := s3Client(ctx, cmd)
			if err != nil {
				return nil, err
			}
			names, err := c.SubFolders(ctx, args[0], scope.Prefix)
			if err != nil {
				return nil, err
			}
			rows := make([]folder, 0, len(names))
			for _, n := range names {
				rows = append(rows, folder{Folder: n})
			}
			return rows, nil
		},
	).PushDown("key").Run(ctx, cmd)
}

func s3VersionsCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner(
		"s3",
		reflect.TypeOf(s3.Version{}),
		s3VersionsDefaultAttrs,
		func(ctx context.Context, cmd *cli.Command) ([]s3.Version, error) {
			args, err := Positional(cmd, 2, "<bucket>", "<key>")
			if err != nil {
				return nil, err
			}
			c, err := s3Client(ctx, cmd)
			if err != nil {
				return nil, err
			}
			return c.ObjectVersions(ctx, args[0], args[1])
		},
	).Run(ctx, cmd)
}

func s3ExistsCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := Positional(cmd, 2, "<bucket>", "<key>")
	if err != nil {
		return err
	}
	c, err := s3Client(ctx, cmd)
	if err != nil {
		return err
	}
	ok, err := c.Exists(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(Writer(cmd), ok)
	return nil
}

func s3SizeCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := Positional(cmd, 2, "<bucket>", "<key>")
	if err != nil {
		return err
	}
	c, err := s3Client(ctx, cmd)
	if err != nil {
		return err
	}
	size, err := c.Size(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if cmd.Bool("human") && size >= 0 {
		fmt.Fprintln(Writer(cmd), humanize.IBytes(uint64(size)))
		return nil
	}
	fmt.Fprintln(Writer(cmd), size)
	return nil
}

func s3DeletedCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := Positional(cmd, 2, "<bucket>", "<key>")
	if err != nil {
		return err
	}
	c, err := s3Client(ctx, cmd)
	if err != nil {
		return err
	}
	deleted, err := c.IsDeleted(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(Writer(cmd), deleted)
	return nil
}

func s3PrevVersionCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := Positional(cmd, 2, "<bucket>", "<key>")
	if err != nil {
		return err
	}
	c, err := s3Client(ctx, cmd)
	if err != nil {
		return err
	}
	id, ok, err := c.PreviousVersion(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("s3://%s/%s has no previous version", args[0], args[1])
	}
	fmt.Fprintln(Writer(cmd), id)
	return nil
}

func s3GetCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := Positional(cmd, 3, "<bucket>", "<key>", "<dest>")
	if err != nil {
		return err
	}
	c, err := s3Client(ctx, cmd)
	if err != nil {
		return err
	}
	n, err := c.Download(ctx, args[0], args[1], args[2], cmd.String("version"))
	if err != nil {
		return err
	}
	log.Infof("downloaded: key=%s, bytes=%d", args[1], n)
	return nil
}

func s3PutCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := Positional(cmd, 3, "<bucket>", "<key>", "<file>")
	if err != nil {
		return err
	}
	c, err := s3Client(ctx, cmd)
	if err != nil {
		return err
	}
	return c.Upload(ctx, args[0], args[1], args[2])
}

func s3MbCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := Positional(cmd, 1, "<bucket>")
	if err != nil {
		return err
	}
	all, err := clients(ctx, cmd)
	if err != nil {
		return err
	}
	region := cmd.String("location")
	if region == "" {
		region = all.Config.Region
	}
	c, err := s3Client(ctx, cmd)
	if err != nil {
		return err
	}
	return c.CreateBucket(ctx, args[0], region)
}

func s3RbCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := Positional(cmd, 1, "<bucket>")
	if err != nil {
		return err
	}
	if ok, err := Confirm(cmd, "empty and delete bucket "+args[0]); err != nil || !ok {
		return abortUnless(err)
	}
	c, err := s3Client(ctx, cmd)
	if err != nil {
		return err
	}
	return c.DeleteBucket(ctx, args[0])
}

func s3EmptyCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := Positional(cmd, 1, "<bucket>")
	if err != nil {
		return err
	}
	if ok, err := Confirm(cmd, "delete every object in bucket "+args[0]); err != nil || !ok {
		return abortUnless(err)
	}
	c, err := s3Client(ctx, cmd)
	if err != nil {
		return err
	}
	n, err := c.EmptyBucket(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(Writer(cmd), "%d objects deleted\n", n)
	return nil
}

func s3RmFolderCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := Positional(cmd, 2, "<bucket>", "<prefix>")
	if err != nil {
		return err
	}
	if ok, err := Confirm(cmd, fmt.Sprintf("delete every object under s3://%s/%s", args[0], args[1])); err != nil || !ok {
		return abortUnless(err)
	}
	c, err := s3Client(ctx, cmd)
	if err != nil {
		return err
	}
	keys, err := c.DeleteFolder(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Fprintln(Writer(cmd), k)
	}
	return nil
}

// abortUnless turns a declined prompt into ErrAborted.
func abortUnless(err error) error {
	if err != nil {
		return err
	}
	return ErrAborted
}

func s3CommandBuilder(meta meta.Meta) *cli.Command {
	keyed := func(name, usage string, action cli.ActionFunc, flags ...cli.Flag) *cli.Command {
		return (&ActionCommandBuilder{
			Name:      name,
			Usage:     usage,
			UsageText: "awsassist s3 " + name + " <bucket> <key>",
			Flags:     flags,
			Action:    action,
			Meta:      meta,
		}).Build()
	}

	return groupCommand("s3", "S3 buckets and objects", meta,
		(&QueryCommandBuilder{
			Name:      "buckets",
			Usage:     "list buckets",
			UsageText: "awsassist s3 buckets [options]",
			Action:    s3BucketsCommandAction,
			Meta:      meta,
		}).Build(),
		(&QueryCommandBuilder{
			Name:      "ls",
			Usage:     "list objects under a prefix",
			UsageText: "awsassist s3 ls <bucket> [prefix] [options]",
			Action:    s3LsCommandAction,
			Meta:      meta,
		}).Build(),
		(&QueryCommandBuilder{
			Name:      "folders",
			Usage:     "list the folder of every object under a prefix",
			UsageText: "awsassist s3 folders <bucket> [prefix] [options]",
			Action:    s3FoldersCommandAction,
			Meta:      meta,
		}).Build(),
		(&QueryCommandBuilder{
			Name:      "versions",
			Usage:     "list the versions of an object",
			UsageText: "awsassist s3 versions <bucket> <key> [options]",
			Action:    s3VersionsCommandAction,
			Meta:      meta,
		}).Build(),
		keyed("exists", "report whether an object exists", s3ExistsCommandAction),
		keyed("size", "print an object's size in bytes", s3SizeCommandAction,
			&cli.BoolFlag{Name: "human", Aliases: []string{"H"}, Usage: "human-readable size"}),
		keyed("deleted", "report whether an object's latest version is a delete marker", s3DeletedCommandAction),
		keyed("prev-version", "print the version id before the latest", s3PrevVersionCommandAction),
		(&ActionCommandBuilder{
			Name:      "get",
			Usage:     "download an object to a file",
			UsageText: "awsassist s3 get <bucket> <key> <dest> [--version id]",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "version", Usage: "object version to download"},
			},
			Action: s3GetCommandAction,
			Meta:   meta,
		}).Build(),
		(&ActionCommandBuilder{
			Name:      "put",
			Usage:     "upload a file to an object",
			UsageText: "awsassist s3 put <bucket> <key> <file>",
			Action:    s3PutCommandAction,
			Meta:      meta,
		}).Build(),
		(&ActionCommandBuilder{
			Name:      "mb",
			Usage:     "create a private, versioned bucket",
			UsageText: "awsassist s3 mb <bucket> [--location region]",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "location", Usage: "bucket region, defaults to --region"},
			},
			Action: s3MbCommandAction,
			Meta:   meta,
		}).Build(),
		(&ActionCommandBuilder{
			Name:        "rb",
			Usage:       "empty and delete a bucket",
			UsageText:   "awsassist s3 rb <bucket> [--yes]",
			Destructive: true,
			Action:      s3RbCommandAction,
			Meta:        meta,
		}).Build(),
		(&ActionCommandBuilder{
			Name:        "empty",
			Usage:       "delete every current object in a bucket",
			UsageText:   "awsassist s3 empty <bucket> [--yes]",
			Destructive: true,
			Action:      s3EmptyCommandAction,
			Meta:        meta,
		}).Build(),
		(&ActionCommandBuilder{
			Name:        "rm-folder",
			Usage:       "delete every object under a prefix",
			UsageText:   "awsassist s3 rm-folder <bucket> <prefix> [--yes]",
			Destructive: true,
			Action:      s3RmFolderCommandAction,
			Meta:        meta,
		}).Build(),
	)
}
