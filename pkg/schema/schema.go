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

// Package schema validates resource payloads against the embedded OpenAPI
// component schemas.
package schema

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Component schema names.
const (
	User        = "User"
	Product     = "Product"
	Cart        = "Cart"
	Credentials = "Credentials"
)

var (
	//go:embed openapi.yaml
	document []byte

	ErrUnknownSchema = errors.New("unknown schema")
)

// Validator checks decoded JSON values against named component schemas.
type Validator struct {
	schemas openapi3.Schemas
}

// Load parses and validates the embedded document.
func Load() (*Validator, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}

	return &Validator{
		schemas: doc.Components.Schemas,
	}, nil
}

// Validate checks value, as produced by encoding/json, against the named
// schema. Every violation is reported, not just the first.
func (v *Validator) Validate(name string, value any) error {
	ref, ok := v.schemas[name]
	if !ok || ref.Value == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}

	if err := ref.Value.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("%s does not match schema: %w", name, err)
	}

	return nil
}

// ValidateAll checks every entry of a collection, returning one error per
// offending entry keyed by its position.
func (v *Validator) ValidateAll(name string, values []map[string]any) map[int]error {
	failures := map[int]error{}

	for i, value := range values {
		if err := v.Validate(name, value); err != nil {
			failures[i] = err
		}
	}

	return failures
}
