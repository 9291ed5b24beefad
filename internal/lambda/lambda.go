// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	lambdav2 "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/awsassist/awsassist/internal/log"
)

// ErrFunction is wrapped by InvokeSync when the function itself failed.
var ErrFunction = errors.New("function error")

// API is the subset of the Lambda client used here.
type API interface {
	Invoke(ctx context.Context, params *lambdav2.InvokeInput, optFns ...func(*lambdav2.Options)) (*lambdav2.InvokeOutput, error)
}

var _ API = (*lambdav2.Client)(nil)

// Client invokes functions.
type Client struct {
	api API
}

// New returns a Client backed by api.
func New(api API) *Client {
	return &Client{api: api}
}

// Invoke queues an asynchronous invocation of name with body as the JSON
// payload. It returns once the service accepts the event.
func (c *Client) Invoke(ctx context.Context, name string, body any) error {
	_, err := c.invoke(ctx, name, body, types.InvocationTypeEvent)
	return err
}

// InvokeSync invokes name, waits for it to finish and returns the decoded
// JSON response. A response that is not JSON is returned as a string. A
// function error is returned wrapping ErrFunction with the payload as the
// message.
func (c *Client) InvokeSync(ctx context.Context, name string, body any) (any, error) {
	out, err := c.invoke(ctx, name, body, types.InvocationTypeRequestResponse)
	if err != nil {
		return nil, err
	}
	if out.FunctionError != nil {
		return nil, fmt.Errorf("invoke %s: %w: %s: %s", name, ErrFunction, *out.FunctionError, out.Payload)
	}
	return decodePayload(out.Payload), nil
}

func (c *Client) invoke(ctx context.Context, name string, body any, typ types.InvocationType) (*lambdav2.InvokeOutput, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("invoke %s: encode payload: %w", name, err)
	}

	log.Debugf("invoke: name=%s, type=%s, len=%d", name, typ, len(payload))
	out, err := c.api.Invoke(ctx, &lambdav2.InvokeInput{
		FunctionName:   awsv2.String(name),
		InvocationType: typ,
		LogType:        types.LogTypeNone,
		Payload:        payload,
	})
	if err != nil {
		return nil, fmt.Errorf("invoke %s: %w", name, err)
	}
	log.Debugf("invoked: name=%s, status=%d", name, out.StatusCode)
	return out, nil
}

// decodePayload returns the JSON value of p, or p as a string when it is
// not JSON. An empty payload decodes to nil.
func decodePayload(p []byte) any {
	if len(p) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(p, &v); err != nil {
		return string(p)
	}
	return v
}
