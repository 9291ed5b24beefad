// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/awsassist/awsassist/internal/log"
)

// schemaTag is a result field discovered from its json struct tag.
type schemaTag struct {
	Name      string
	OmitEmpty bool
}

// newTag parses a json struct tag value. holder prefixes nested names.
// The zero tag is returned for skipped fields.
func newTag(holder string, s string) schemaTag {
	parts := strings.Split(s, ",")
	if parts[0] == "" || parts[0] == "-" {
		return schemaTag{}
	}

	tag := schemaTag{Name: parts[0]}
	if holder != "" {
		tag.Name = holder + "." + tag.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			tag.OmitEmpty = true
		}
	}
	return tag
}

// maxSchemaDepth limits how far nested structs are walked.
const maxSchemaDepth = 1

var timeType = reflect.TypeOf(time.Time{})

// DumpSchema writes the sorted attribute names of the result type typ to w.
// If w is nil, os.Stdout is used.
func DumpSchema(typ reflect.Type, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	for typ.Kind() == reflect.Ptr || typ.Kind() == reflect.Slice {
		typ = typ.Elem()
	}

	fmt.Fprintln(w, "Attributes available to the --attrs, --filter and --sort flags.")
	fmt.Fprintln(w, "")

	tags := dumpSchemaWalker("", typ, 0)
	if len(tags) == 0 {
		log.Debugf("no tags found: type=%s", typ.Name())
		return
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})

	for _, tag := range tags {
		fmt.Fprintln(w, tag.Name)
	}
}

// dumpSchemaWalker walks a struct type collecting json-tagged fields.
func dumpSchemaWalker(holder string, typ reflect.Type, depth int) []schemaTag {
	tags := make([]schemaTag, 0)
	if typ.Kind() != reflect.Struct {
		return tags
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		tagValue, ok := field.Tag.Lookup("json")
		if !ok {
			continue
		}
		tag := newTag(holder, tagValue)
		if tag.Name == "" {
			continue
		}
		tags = append(tags, tag)

		if depth >= maxSchemaDepth {
			continue
		}
		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct && ft != timeType {
			tags = append(tags, dumpSchemaWalker(tag.Name, ft, depth+1)...)
		}
	}

	return tags
}
