// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const before = `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Action":["s3:GetObject"],"Resource":["*"]}]}`

func TestDiff(t *testing.T) {
	tests := []struct {
		name        string
		old, new    string
		wantChanged bool
		wantLines   [][2]string
	}{
		{name: "identical", old: before, new: before},
		{
			name:        "reordered keys are equal",
			old:         `{"a":1,"b":2}`,
			new:         `{"b":2,"a":1}`,
			wantChanged: false,
		},
		{
			name:        "action added",
			old:         before,
			new:         `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Action":["s3:GetObject","s3:PutObject"],"Resource":["*"]}]}`,
			wantChanged: true,
			wantLines:   [][2]string{{"+", `"s3:PutObject"`}},
		},
		{
			name:        "value changed",
			old:         `{"Effect":"Allow"}`,
			new:         `{"Effect":"Deny"}`,
			wantChanged: true,
			wantLines:   [][2]string{{"-", `"Allow"`}, {"+", `"Deny"`}},
		},
		{
			name:        "against empty",
			old:         string(Empty),
			new:         `{"Effect":"Allow"}`,
			wantChanged: true,
			wantLines:   [][2]string{{"+", `"Effect": "Allow"`}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed, err := Diff([]byte(tt.old), []byte(tt.new), false)

			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
			if !tt.wantChanged {
				assert.Empty(t, got)
			}
			for _, want := range tt.wantLines {
				assert.True(t, hasLine(got, want[0], want[1]), "no %q line with %s in:\n%s", want[0], want[1], got)
			}
		})
	}
}

func TestDiff_Invalid(t *testing.T) {
	_, _, err := Diff([]byte(`{`), []byte(`{}`), false)
	assert.Error(t, err)
}

// hasLine reports whether some line of s starts with marker and contains
// text.
func hasLine(s, marker, text string) bool {
	for line := range strings.SplitSeq(s, "\n") {
		if strings.HasPrefix(line, marker) && strings.Contains(line, text) {
			return true
		}
	}
	return false
}
