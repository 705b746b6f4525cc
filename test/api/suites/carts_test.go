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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/storeqa/fakestore-suite/pkg/schema"
	"github.com/storeqa/fakestore-suite/pkg/storeapi"
	"github.com/storeqa/fakestore-suite/pkg/validate"
	"github.com/storeqa/fakestore-suite/test/api"
)

var _ = Describe("Carts", func() {
	Context("When listing carts", func() {
		It("should return the same cart from the single endpoint", func() {
			carts := api.MustFetchAll(ctx, client, storeapi.Carts)

			failures, err := validate.ValidateIDConsistency(carts, api.SingleFetcher(ctx, client, storeapi.Carts))
			Expect(err).NotTo(HaveOccurred())
			Expect(failures).To(BeEmpty(), "Carts mismatches found:\n%s", strings.Join(failures, "\n"))
		})

		It("should only reference existing products", func() {
			carts := api.MustFetchAll(ctx, client, storeapi.Carts)
			products := api.MustFetchAll(ctx, client, storeapi.Products)

			invalid := validate.CartProductReferences(carts, products)
			Expect(invalid).To(BeEmpty(), "Invalid product references found: %v", invalid)
		})

		It("should only reference existing users", func() {
			carts := api.MustFetchAll(ctx, client, storeapi.Carts)
			users := api.MustFetchAll(ctx, client, storeapi.Users)

			invalid := validate.CartUserReferences(carts, users)
			Expect(invalid).To(BeEmpty(), "Invalid user references found: %v", invalid)
		})

		It("should hold at least one product with a positive quantity", func() {
			invalid := validate.CartsWithoutQuantity(api.MustFetchAll(ctx, client, storeapi.Carts))
			Expect(invalid).To(BeEmpty(), "Found carts with invalid products list: %v", invalid)
		})

		It("should expose unique cart ids", func() {
			duplicates := validate.ValidateUniqueIdentifier(api.MustFetchAll(ctx, client, storeapi.Carts), "id", "userId")
			Expect(duplicates).To(BeEmpty(), "Duplicate cart IDs found: %v", duplicates)
		})

		It("should match the cart schema", func() {
			Expect(schemas.ValidateAll(schema.Cart, api.MustFetchAll(ctx, client, storeapi.Carts))).To(BeEmpty())
		})
	})

	Context("When creating a cart", func() {
		It("should reject a duplicated cart id", func() {
			existing := api.RandomResource(ctx, client, storeapi.Carts, generator)

			resp, err := client.CreateCart(ctx, api.MirrorPayload(existing).Build())
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(logger, resp, http.StatusBadRequest, "creating a cart with existing id "+storeapi.FormatID(existing["id"]))
		})

		DescribeTable("should require every field",
			func(field string, expected int) {
				payload := api.MirrorNewCart(ctx, client, generator).Without(field).Build()

				resp, err := client.CreateCart(ctx, payload)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(logger, resp, expected, missing(field))
			},
			Entry("all fields present", "", http.StatusCreated),
			Entry("missing id", "id", http.StatusBadRequest),
			Entry("missing userId", "userId", http.StatusBadRequest),
			Entry("missing date", "date", http.StatusBadRequest),
			Entry("missing products", "products", http.StatusBadRequest),
		)
	})

	Context("When updating a cart", func() {
		DescribeTable("should require every field",
			func(field string, expected int) {
				existing := api.RandomResource(ctx, client, storeapi.Carts, generator)
				payload := api.MirrorPayload(existing).Without(field).Build()

				resp, err := client.UpdateCart(ctx, storeapi.FormatID(existing["id"]), payload)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(logger, resp, expected, missing(field))
			},
			Entry("all fields present", "", http.StatusOK),
			Entry("missing id", "id", http.StatusBadRequest),
			Entry("missing userId", "userId", http.StatusBadRequest),
			Entry("missing date", "date", http.StatusBadRequest),
			Entry("missing products", "products", http.StatusBadRequest),
		)
	})

	Context("When deleting a cart", func() {
		It("should delete an existing cart", func() {
			id := storeapi.FormatID(api.RandomResource(ctx, client, storeapi.Carts, generator)["id"])

			resp, err := client.DeleteCart(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(logger, resp, http.StatusOK, "deleting cart "+id)
		})
	})
})
