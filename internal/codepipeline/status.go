// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package codepipeline

import (
	"github.com/aws/aws-sdk-go-v2/service/codepipeline/types"
)

// Status is the reduced state of a whole pipeline.
type Status string

const (
	Succeeded  Status = "Succeeded"
	Failed     Status = "Failed"
	InProgress Status = "InProgress"
)

// StageState is one pipeline stage and its actions, in pipeline order.
type StageState struct {
	Name    string        `json:"name"`
	Actions []ActionState `json:"actions"`
}

// ActionState carries an action's latest execution status. Status is empty
// when the action has never executed.
type ActionState struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// AggregateStatus reduces stage states to a single pipeline status.
//
// The result starts as Succeeded. A Failed action sets Failed and scanning
// continues. An InProgress action sets InProgress and ends the scan of every
// remaining action and stage, so a Failed action in a later stage is never
// seen. Any other status leaves the result unchanged.
func AggregateStatus(stages []StageState) Status {
	state := Succeeded
	for _, stage := range stages {
		for _, action := range stage.Actions {
			switch Status(action.Status) {
			case Failed:
				state = Failed
			case InProgress:
				return InProgress
			}
		}
	}
	return state
}

// stageStates converts SDK stage states, keeping stage and action order.
func stageStates(in []types.StageState) []StageState {
	out := make([]StageState, 0, len(in))
	for _, s := range in {
		stage := StageState{
			Name:    deref(s.StageName),
			Actions: make([]ActionState, 0, len(s.ActionStates)),
		}
		for _, a := range s.ActionStates {
			action := ActionState{Name: deref(a.ActionName)}
			if a.LatestExecution != nil {
				action.Status = string(a.LatestExecution.Status)
			}
			stage.Actions = append(stage.Actions, action)
		}
		out = append(out, stage)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
