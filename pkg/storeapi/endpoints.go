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
	"net/url"
)

// Resource names one of the CRUD resource groups of the store.
type Resource string

const (
	Products Resource = "products"
	Carts    Resource = "carts"
	Users    Resource = "users"
)

// Endpoints contains all API endpoint paths.
type Endpoints struct {
	collections map[Resource]string
	auth        string
}

// NewEndpoints creates the endpoint table from the configured paths.
func NewEndpoints(config *TestConfig) *Endpoints {
	return &Endpoints{
		collections: map[Resource]string{
			Products: config.ProductsPath,
			Carts:    config.CartsPath,
			Users:    config.UsersPath,
		},
		auth: config.AuthPath,
	}
}

// Collection endpoints.
func (e *Endpoints) Collection(r Resource) string {
	return e.collections[r]
}

// Item endpoints. An empty id addresses the collection with a trailing
// slash, which servers treat as an unknown route.
func (e *Endpoints) Item(r Resource, id string) string {
	return e.collections[r] + "/" + url.PathEscape(id)
}

// Auth endpoint.
func (e *Endpoints) Auth() string {
	return e.auth
}
