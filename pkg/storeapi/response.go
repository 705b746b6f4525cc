/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package storeapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnexpectedShape is returned when a body decodes to the wrong JSON type.
var ErrUnexpectedShape = errors.New("unexpected response shape")

// Response is the outcome of one API call. The body is decoded on first
// access and the result cached.
type Response struct {
	StatusCode int
	Body       []byte

	decoded bool
	value   any
	err     error
}

// JSON returns the decoded body.
func (r *Response) JSON() (any, error) {
	if !r.decoded {
		r.decoded = true

		if err := json.Unmarshal(r.Body, &r.value); err != nil {
			r.err = fmt.Errorf("decoding response body: %w", err)
		}
	}

	return r.value, r.err
}

// Object returns the body as a JSON object.
func (r *Response) Object() (map[string]any, error) {
	value, err := r.JSON()
	if err != nil {
		return nil, err
	}

	object, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %T", ErrUnexpectedShape, value)
	}

	return object, nil
}

// List returns the body as an array of JSON objects.
func (r *Response) List() ([]map[string]any, error) {
	value, err := r.JSON()
	if err != nil {
		return nil, err
	}

	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected array, got %T", ErrUnexpectedShape, value)
	}

	out := make([]map[string]any, len(items))

	for i, item := range items {
		object, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T", ErrUnexpectedShape, i, item)
		}

		out[i] = object
	}

	return out, nil
}

// Decode unmarshals the body into v, typically one of the model types.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}
