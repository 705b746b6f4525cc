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

var _ = Describe("Products", func() {
	Context("When listing products", func() {
		It("should expose exactly the declared categories", func() {
			categories := validate.Categories(api.MustFetchAll(ctx, client, storeapi.Products))
			Expect(categories).To(ConsistOf(config.CategoryList()), "Got %v, expected %v", categories, config.CategoryList())
		})

		It("should price every product as a positive number", func() {
			invalid := validate.InvalidPrices(api.MustFetchAll(ctx, client, storeapi.Products))
			Expect(invalid).To(BeEmpty(), "Invalid product prices found: %v", invalid)
		})

		It("should expose unique product ids", func() {
			duplicates := validate.ValidateUniqueIdentifier(api.MustFetchAll(ctx, client, storeapi.Products), "id", "title")
			Expect(duplicates).To(BeEmpty(), "Duplicate product IDs found: %v", duplicates)
		})

		It("should return the same product from the single endpoint", func() {
			products := api.MustFetchAll(ctx, client, storeapi.Products)

			failures, err := validate.ValidateIDConsistency(products, api.SingleFetcher(ctx, client, storeapi.Products))
			Expect(err).NotTo(HaveOccurred())
			Expect(failures).To(BeEmpty(), "Product mismatches found:\n%s", strings.Join(failures, "\n"))
		})

		It("should place at least one product in every declared category", func() {
			empty := validate.EmptyCategories(api.MustFetchAll(ctx, client, storeapi.Products), config.CategoryList())
			Expect(empty).To(BeEmpty(), "Empty categories found: %v", empty)
		})

		It("should match the product schema", func() {
			Expect(schemas.ValidateAll(schema.Product, api.MustFetchAll(ctx, client, storeapi.Products))).To(BeEmpty())
		})
	})

	Context("When creating a product", func() {
		DescribeTable("should require every field",
			func(field string, expected int) {
				payload := api.NewProductPayload(generator.GenerateProduct()).Without(field).Build()

				resp, err := client.CreateProduct(ctx, payload)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(logger, resp, expected, missing(field))
			},
			Entry("all fields present", "", http.StatusCreated),
			Entry("missing title", "title", http.StatusBadRequest),
			Entry("missing price", "price", http.StatusBadRequest),
			Entry("missing description", "description", http.StatusBadRequest),
			Entry("missing category", "category", http.StatusBadRequest),
			Entry("missing image", "image", http.StatusBadRequest),
		)
	})

	Context("When updating a product", func() {
		DescribeTable("should require every field",
			func(field string, expected int) {
				id := storeapi.FormatID(api.RandomResource(ctx, client, storeapi.Products, generator)["id"])
				payload := api.NewProductPayload(generator.GenerateProduct()).Without(field).Build()

				resp, err := client.UpdateProduct(ctx, id, payload)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(logger, resp, expected, missing(field))
			},
			Entry("all fields present", "", http.StatusOK),
			Entry("missing title", "title", http.StatusBadRequest),
			Entry("missing price", "price", http.StatusBadRequest),
			Entry("missing description", "description", http.StatusBadRequest),
			Entry("missing category", "category", http.StatusBadRequest),
			Entry("missing image", "image", http.StatusBadRequest),
		)
	})

	Context("When deleting a product", func() {
		It("should delete an existing product", func() {
			id := storeapi.FormatID(api.RandomResource(ctx, client, storeapi.Products, generator)["id"])

			resp, err := client.DeleteProduct(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(logger, resp, http.StatusOK, "deleting product "+id)
		})
	})
})
