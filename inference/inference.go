/*
 *     Copyright 2024 The Linreg Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

//go:generate mockgen -destination mocks/inference_mock.go -source inference.go -package mocks

package inference

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/sagemakerruntime"
	"github.com/go-http-utils/headers"
	"github.com/pkg/errors"

	logger "github.com/mlglue/linreg/internal/logger"
	"github.com/mlglue/linreg/pkg/types"
)

// Invoker is the part of the runtime client invoking endpoints.
type Invoker interface {
	InvokeEndpointWithContext(aws.Context, *sagemakerruntime.InvokeEndpointInput, ...request.Option) (*sagemakerruntime.InvokeEndpointOutput, error)
}

// Response is the body of a successful invocation.
type Response struct {
	Prediction json.RawMessage `json:"prediction"`
}

// Handler forwards gateway requests to the endpoint.
type Handler struct {
	runtime      Invoker
	endpointName string
}

// New returns a handler invoking the endpoint with runtime.
func New(runtime Invoker, endpointName string) *Handler {
	return &Handler{
		runtime:      runtime,
		endpointName: endpointName,
	}
}

// Handle forwards the json request body to the endpoint, and responds the
// endpoint output under the prediction key. Request bodies that are not
// valid json return an error without a response.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log := logger.WithRequestID(requestID(ctx, req)).With("endpoint", h.endpointName)

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		var err error
		if body, err = base64.StdEncoding.DecodeString(req.Body); err != nil {
			return events.APIGatewayProxyResponse{}, errors.Wrap(err, "decode request body")
		}
	}

	payload := &bytes.Buffer{}
	if err := json.Compact(payload, body); err != nil {
		return events.APIGatewayProxyResponse{}, errors.Wrap(err, "decode request body")
	}
	log.Debugf("invoke endpoint with payload %s", payload.String())

	out, err := h.runtime.InvokeEndpointWithContext(ctx, &sagemakerruntime.InvokeEndpointInput{
		EndpointName: aws.String(h.endpointName),
		ContentType:  aws.String(types.ContentTypeJSON),
		Accept:       aws.String(types.ContentTypeJSON),
		Body:         payload.Bytes(),
	})
	if err != nil {
		log.Errorf("invoke endpoint failed: %s", err)
		return events.APIGatewayProxyResponse{}, errors.Wrap(err, "invoke endpoint")
	}

	prediction := bytes.TrimSpace(out.Body)
	if !json.Valid(prediction) {
		return events.APIGatewayProxyResponse{}, errors.Errorf("decode endpoint response: invalid json %q", out.Body)
	}

	b, err := json.Marshal(&Response{Prediction: prediction})
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{headers.ContentType: types.ContentTypeJSON},
		Body:       string(b),
	}, nil
}

// requestID prefers the function invocation id over the gateway request id.
func requestID(ctx context.Context, req events.APIGatewayProxyRequest) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}

	return req.RequestContext.RequestID
}
