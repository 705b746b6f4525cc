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
	"fmt"
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/storeqa/fakestore-suite/pkg/schema"
	"github.com/storeqa/fakestore-suite/pkg/storeapi"
	"github.com/storeqa/fakestore-suite/pkg/validate"
	"github.com/storeqa/fakestore-suite/test/api"
)

var _ = Describe("Users", func() {
	Context("When listing users", func() {
		It("should expose unique user ids", func() {
			users := api.MustFetchAll(ctx, client, storeapi.Users)

			duplicates := validate.ValidateUniqueIdentifier(users, "id", "username")
			logger.Info(fmt.Sprintf("Duplicate user IDs found: %v", duplicates))
			Expect(duplicates).To(BeEmpty())
		})

		It("should return the same user from the single endpoint", func() {
			users := api.MustFetchAll(ctx, client, storeapi.Users)

			failures, err := validate.ValidateIDConsistency(users, api.SingleFetcher(ctx, client, storeapi.Users))
			Expect(err).NotTo(HaveOccurred())
			logger.Info("User mismatches found: " + strings.Join(failures, "\n"))
			Expect(failures).To(BeEmpty())
		})

		It("should only contain well formed email addresses", func() {
			invalid := validate.InvalidEmails(api.MustFetchAll(ctx, client, storeapi.Users))
			logger.Info(fmt.Sprintf("Invalid email formats found: %v", invalid))
			Expect(invalid).To(BeEmpty())
		})

		It("should match the user schema", func() {
			Expect(schemas.ValidateAll(schema.User, api.MustFetchAll(ctx, client, storeapi.Users))).To(BeEmpty())
		})
	})

	Context("When creating a user", func() {
		DescribeTable("should require every field",
			func(field string, expected int) {
				payload := api.NewUserPayload(generator.GenerateUser()).Without(field).Build()

				resp, err := client.CreateUser(ctx, payload)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(logger, resp, expected, missing(field))
			},
			Entry("all fields present", "", http.StatusCreated),
			Entry("missing id", "id", http.StatusBadRequest),
			Entry("missing username", "username", http.StatusBadRequest),
			Entry("missing email", "email", http.StatusBadRequest),
			Entry("missing password", "password", http.StatusBadRequest),
		)
	})

	Context("When updating a user", func() {
		DescribeTable("should require every field",
			func(field string, expected int) {
				uid := storeapi.FormatID(api.RandomResource(ctx, client, storeapi.Users, generator)["id"])
				payload := api.NewUserPayload(generator.GenerateUser()).Without(field).Build()

				resp, err := client.UpdateUser(ctx, uid, payload)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(logger, resp, expected, missing(field))
			},
			Entry("all fields present", "", http.StatusOK),
			Entry("missing id", "id", http.StatusBadRequest),
			Entry("missing username", "username", http.StatusBadRequest),
			Entry("missing email", "email", http.StatusBadRequest),
			Entry("missing password", "password", http.StatusBadRequest),
		)

		DescribeTable("should reject invalid user ids",
			func(uid string, expected int) {
				resp, err := client.UpdateUser(ctx, uid, api.NewUserPayload(generator.GenerateUser()).Build())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(logger, resp, expected, fmt.Sprintf("for uid=%q", uid))
			},
			Entry("non numeric uid", "non-existent-id-12345", http.StatusBadRequest),
			Entry("empty uid", "", http.StatusNotFound),
		)
	})

	Context("When deleting a user", func() {
		It("should delete an existing user", func() {
			uid := storeapi.FormatID(api.RandomResource(ctx, client, storeapi.Users, generator)["id"])

			resp, err := client.DeleteUser(ctx, uid)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(logger, resp, http.StatusOK, "deleting user "+uid)
		})
	})
})
