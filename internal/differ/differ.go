// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/awsassist/awsassist/internal/log"
)

// Diff compares two JSON objects and renders the delta in the annotated
// ASCII form, new side against old. changed is false, and the rendering
// empty, when the documents are equal.
func Diff(old, new []byte, coloring bool) (rendered string, changed bool, err error) {
	log.Debugf("diff: old=%d, new=%d", len(old), len(new))

	delta, err := gojsondiff.New().Compare(old, new)
	if err != nil {
		return "", false, fmt.Errorf("compare documents: %w", err)
	}
	if !delta.Modified() {
		return "", false, nil
	}

	var left map[string]any
	if err := json.Unmarshal(old, &left); err != nil {
		return "", false, fmt.Errorf("decode document: %w", err)
	}

	f := formatter.NewAsciiFormatter(left, formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       coloring,
	})
	rendered, err = f.Format(delta)
	if err != nil {
		return "", false, err
	}
	return rendered, true, nil
}

// Empty is the document compared against when there is no previous version.
var Empty = []byte("{}")
