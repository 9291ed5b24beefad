// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var segmentRe = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+|\*)?\])?$`)

// Drill navigates a JSON document along a dot path. A segment may carry an
// array index, key[2]. A single-element array is unwrapped when no index is
// given; longer arrays are returned whole. An invalid segment or out of range
// index yields an empty result.
func Drill(jsonData string, path string) gjson.Result {
	current := gjson.Parse(jsonData)

	for p := range strings.SplitSeq(path, ".") {
		matches := segmentRe.FindStringSubmatch(p)
		if len(matches) == 0 {
			return gjson.Result{}
		}

		index := -1
		if matches[3] != "" && matches[3] != "*" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(matches[1])
		if val.IsArray() {
			arr := val.Array()
			switch {
			case index == -1:
				if len(arr) == 1 {
					val = arr[0]
				}
			case index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		}

		current = val
	}

	return current
}
