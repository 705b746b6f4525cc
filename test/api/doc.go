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

// Package api provides the test scaffolding shared by the store conformance
// suites: Gomega fixtures, payload builders, credential scenarios and the
// random data generator.
//
// # Test Data
//
// Create and update calls are fed by a DataGenerator. The default
// implementation draws from gofakeit and can be seeded with DATA_SEED to
// replay a failing run.
package api
