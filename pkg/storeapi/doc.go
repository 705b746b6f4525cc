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

// Package storeapi is the client side of the store: configuration, endpoint
// paths, resource models, the HTTP client and the run logger.
//
// # Separate Client Implementation
//
// Callers talk to the store through APIClient, a small hand written HTTP
// client, rather than a generated one. Status codes and raw bodies stay
// directly visible to assertions, and a response is only decoded when a
// check asks for it. Every call is summarised on the run log by method,
// resource and payload field names; payload values are never logged as
// they include passwords.
//
// # Targets
//
// API_BASE_URL selects the deployment under test. When it is unset callers
// serve pkg/fakestore in process, which keeps go test ./... hermetic.
package storeapi
