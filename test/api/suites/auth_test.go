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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/storeqa/fakestore-suite/test/api"
)

var _ = Describe("Auth", func() {
	Context("When logging in", func() {
		DescribeTable("should answer each credential shape",
			func(scenario api.CredentialScenario, expected int, message string) {
				valid := api.RandomCredential(ctx, client, generator)

				resp, err := client.Authenticate(ctx, scenario(valid, generator).Payload())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(logger, resp, expected, message)
			},
			Entry("valid user", api.ValidCredential, http.StatusCreated, "Failed to login with correct credential"),
			Entry("unauthorized user", api.UnknownCredential, http.StatusUnauthorized, "Unauthorized user logged in successfully"),
			Entry("missing password", api.MissingPassword, http.StatusBadRequest, "Authorized user without password logged in successfully"),
			Entry("missing username", api.MissingUsername, http.StatusBadRequest, "Authorized user without username logged in successfully"),
			Entry("wrong password", api.WrongPassword, http.StatusUnauthorized, "Authorized user with wrong password logged in successfully"),
			Entry("wrong username", api.WrongUsername, http.StatusUnauthorized, "Authorized user with wrong username logged in successfully"),
		)
	})
})
