// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package secrets

import (
	"context"
	"errors"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	sm "github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/stretchr/testify/assert"

	awsx "github.com/awsassist/awsassist/internal/aws"
)

type fakeAPI struct {
	out *sm.GetSecretValueOutput
	err error
}

func (f fakeAPI) GetSecretValue(context.Context, *sm.GetSecretValueInput, ...func(*sm.Options)) (*sm.GetSecretValueOutput, error) {
	return f.out, f.err
}

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		api     fakeAPI
		want    string
		wantOK  bool
		wantErr bool
	}{
		{
			name:   "string secret",
			api:    fakeAPI{out: &sm.GetSecretValueOutput{SecretString: awsv2.String("s3cr3t")}},
			want:   "s3cr3t",
			wantOK: true,
		},
		{
			name:   "empty string is still a value",
			api:    fakeAPI{out: &sm.GetSecretValueOutput{SecretString: awsv2.String("")}},
			wantOK: true,
		},
		{
			name: "binary only",
			api:  fakeAPI{out: &sm.GetSecretValueOutput{SecretBinary: []byte{0x1}}},
		},
		{
			name:    "service error",
			api:     fakeAPI{err: errors.New("access denied")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := New(tt.api).Get(context.Background(), "db/password")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestGet_NotFoundIsClassified(t *testing.T) {
	api := fakeAPI{err: &types.ResourceNotFoundException{Message: awsv2.String("gone")}}

	_, _, err := New(api).Get(context.Background(), "db/password")

	assert.True(t, awsx.IsNotFound(err))
}
