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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	. "github.com/onsi/gomega"

	"github.com/storeqa/fakestore-suite/pkg/storeapi"
	"github.com/storeqa/fakestore-suite/pkg/validate"
)

// ExpectStatus records the actual and expected status codes, then asserts
// they match, so a failure can be diagnosed from the run log alone.
func ExpectStatus(log logr.Logger, resp *storeapi.Response, expected int, description string) {
	log.Info(fmt.Sprintf("Actual: %d; Expect: %d; %s", resp.StatusCode, expected, description))

	ExpectWithOffset(1, resp.StatusCode).To(Equal(expected), "%s: body %s", description, string(resp.Body))
}

// MustFetchAll lists a resource, asserting the call succeeds with 200 OK.
func MustFetchAll(ctx context.Context, c *storeapi.APIClient, r storeapi.Resource) []map[string]any {
	items, err := c.FetchAll(ctx, r)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	return items
}

// SingleFetcher adapts the client's single endpoint for the validators.
func SingleFetcher(ctx context.Context, c *storeapi.APIClient, r storeapi.Resource) validate.FetchFunc {
	return func(id any) (validate.Entry, error) {
		return c.FetchOne(ctx, r, id)
	}
}

// RandomEntry picks one entity from a non-empty collection.
func RandomEntry(entries []map[string]any, gen DataGenerator) map[string]any {
	ExpectWithOffset(1, entries).NotTo(BeEmpty(), "cannot pick from an empty collection")

	return entries[gen.Index(len(entries))]
}

// RandomResource lists a resource and picks one entity from it.
func RandomResource(ctx context.Context, c *storeapi.APIClient, r storeapi.Resource, gen DataGenerator) map[string]any {
	entries := MustFetchAll(ctx, c, r)
	ExpectWithOffset(1, entries).NotTo(BeEmpty(), "%s collection is empty", r)

	return entries[gen.Index(len(entries))]
}

// NextID returns one more than the highest numeric id in the collection.
func NextID(entries []map[string]any) int {
	var highest float64

	for _, entry := range entries {
		if id, ok := validate.Number(entry["id"]); ok && id > highest {
			highest = id
		}
	}

	return int(highest) + 1
}

// MirrorNewCart copies a random existing cart under an id no cart uses yet.
func MirrorNewCart(ctx context.Context, c *storeapi.APIClient, gen DataGenerator) *PayloadBuilder {
	carts := MustFetchAll(ctx, c, storeapi.Carts)
	ExpectWithOffset(1, carts).NotTo(BeEmpty(), "carts collection is empty")

	return MirrorPayload(carts[gen.Index(len(carts))]).With("id", NextID(carts))
}

// RandomCredential picks the username and password of a random listed user.
func RandomCredential(ctx context.Context, c *storeapi.APIClient, gen DataGenerator) Credential {
	credentials := Credentials(MustFetchAll(ctx, c, storeapi.Users))
	ExpectWithOffset(1, credentials).NotTo(BeEmpty(), "no user exposes both username and password")

	return credentials[gen.Index(len(credentials))]
}
