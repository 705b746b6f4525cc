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

package api

import (
	"maps"

	"github.com/storeqa/fakestore-suite/pkg/storeapi"
)

// PayloadBuilder builds request payloads for create and update calls,
// typically a complete payload with one required field dropped.
type PayloadBuilder struct {
	payload map[string]any
}

// NewUserPayload creates a builder holding every user field.
func NewUserPayload(user storeapi.User) *PayloadBuilder {
	return &PayloadBuilder{
		payload: map[string]any{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"password": user.Password,
		},
	}
}

// NewProductPayload creates a builder holding every product field.
// The id is left for the server to allocate.
func NewProductPayload(product storeapi.Product) *PayloadBuilder {
	payload := map[string]any{
		"title":       product.Title,
		"price":       product.Price,
		"description": product.Description,
		"category":    product.Category,
		"image":       product.Image,
	}

	if product.ID != 0 {
		payload["id"] = product.ID
	}

	return &PayloadBuilder{payload: payload}
}

// NewCartPayload creates a builder holding every cart field.
func NewCartPayload(cart storeapi.Cart) *PayloadBuilder {
	lines := make([]any, len(cart.Products))

	for i, line := range cart.Products {
		lines[i] = map[string]any{
			"productId": line.ProductID,
			"quantity":  line.Quantity,
		}
	}

	return &PayloadBuilder{
		payload: map[string]any{
			"id":       cart.ID,
			"userId":   cart.UserID,
			"date":     cart.Date,
			"products": lines,
		},
	}
}

// MirrorPayload starts from an entity as returned by the API, keeping any
// fields the model types do not know about.
func MirrorPayload(entity map[string]any) *PayloadBuilder {
	return &PayloadBuilder{payload: maps.Clone(entity)}
}

// With sets a field.
func (b *PayloadBuilder) With(field string, value any) *PayloadBuilder {
	b.payload[field] = value
	return b
}

// Without drops a field. An empty name leaves the payload complete, which
// lets tables use "" for the happy path.
func (b *PayloadBuilder) Without(field string) *PayloadBuilder {
	if field != "" {
		delete(b.payload, field)
	}

	return b
}

// Build returns a copy of the payload so a builder can be reused.
func (b *PayloadBuilder) Build() map[string]any {
	return maps.Clone(b.payload)
}
