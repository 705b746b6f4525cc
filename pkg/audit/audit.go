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

// Package audit runs the read-only store checks outside of a test binary.
package audit

import (
	"context"
	"fmt"
	"slices"

	"github.com/go-logr/logr"

	"github.com/storeqa/fakestore-suite/pkg/schema"
	"github.com/storeqa/fakestore-suite/pkg/storeapi"
	"github.com/storeqa/fakestore-suite/pkg/validate"
)

// Client is the subset of the API client the auditor reads through.
type Client interface {
	FetchAll(ctx context.Context, r storeapi.Resource) ([]map[string]any, error)
	FetchOne(ctx context.Context, r storeapi.Resource, id any) (map[string]any, error)
}

// Finding is a single broken expectation reported by a check.
type Finding struct {
	Check  string
	Detail string
}

func (f Finding) String() string {
	return f.Check + ": " + f.Detail
}

type check struct {
	name string
	run  func(ctx context.Context) ([]string, error)
}

// Auditor executes every check against one store.
type Auditor struct {
	client     Client
	schemas    *schema.Validator
	categories []string
	log        logr.Logger

	users    []validate.Entry
	products []validate.Entry
	carts    []validate.Entry
}

// New returns an auditor reading through c.
func New(c Client, schemas *schema.Validator, categories []string, log logr.Logger) *Auditor {
	return &Auditor{
		client:     c,
		schemas:    schemas,
		categories: slices.Clone(categories),
		log:        log,
	}
}

// Run lists every collection once then evaluates the checks in order.
// Transport and decoding failures abort the run, broken expectations
// are collected as findings.
func (a *Auditor) Run(ctx context.Context) ([]Finding, error) {
	if err := a.load(ctx); err != nil {
		return nil, err
	}

	var findings []Finding

	for _, c := range a.checks() {
		a.log.Info("[TEST START] " + c.name)

		details, err := c.run(ctx)
		if err != nil {
			a.log.Error(err, "check aborted", "check", c.name)

			return nil, fmt.Errorf("%s: %w", c.name, err)
		}

		for _, detail := range details {
			a.log.Info(detail, "check", c.name)

			findings = append(findings, Finding{Check: c.name, Detail: detail})
		}

		a.log.Info(fmt.Sprintf("[TEST RESULT] %s → %s", c.name, result(details)))
	}

	return findings, nil
}

func result(details []string) string {
	if len(details) == 0 {
		return "PASSED"
	}

	return "FAILED"
}

func (a *Auditor) load(ctx context.Context) error {
	var err error

	if a.users, err = a.client.FetchAll(ctx, storeapi.Users); err != nil {
		return err
	}

	if a.products, err = a.client.FetchAll(ctx, storeapi.Products); err != nil {
		return err
	}

	if a.carts, err = a.client.FetchAll(ctx, storeapi.Carts); err != nil {
		return err
	}

	return nil
}

func (a *Auditor) checks() []check {
	return []check{
		{name: "users unique ids", run: pure(func() []string { return duplicates(a.users, "id", "username") })},
		{name: "users consistency", run: a.consistency(storeapi.Users, a.users)},
		{name: "users emails", run: pure(func() []string { return findings("invalid email", validate.InvalidEmails(a.users)) })},
		{name: "users schema", run: pure(func() []string { return a.schemaErrors(schema.User, a.users) })},
		{name: "products categories", run: pure(a.categoryMismatch)},
		{name: "products prices", run: pure(func() []string { return findings("invalid price", validate.InvalidPrices(a.products)) })},
		{name: "products unique ids", run: pure(func() []string { return duplicates(a.products, "id", "title") })},
		{name: "products consistency", run: a.consistency(storeapi.Products, a.products)},
		{name: "products category coverage", run: pure(a.emptyCategories)},
		{name: "products schema", run: pure(func() []string { return a.schemaErrors(schema.Product, a.products) })},
		{name: "carts consistency", run: a.consistency(storeapi.Carts, a.carts)},
		{name: "carts product references", run: pure(func() []string {
			return references("unknown product", validate.CartProductReferences(a.carts, a.products))
		})},
		{name: "carts user references", run: pure(func() []string {
			return references("unknown user", validate.CartUserReferences(a.carts, a.users))
		})},
		{name: "carts quantities", run: pure(a.cartsWithoutQuantity)},
		{name: "carts unique ids", run: pure(func() []string { return duplicates(a.carts, "id", "userId") })},
		{name: "carts schema", run: pure(func() []string { return a.schemaErrors(schema.Cart, a.carts) })},
	}
}

func pure(f func() []string) func(context.Context) ([]string, error) {
	return func(context.Context) ([]string, error) {
		return f(), nil
	}
}

func (a *Auditor) consistency(r storeapi.Resource, collection []validate.Entry) func(context.Context) ([]string, error) {
	return func(ctx context.Context) ([]string, error) {
		return validate.ValidateIDConsistency(collection, func(id any) (validate.Entry, error) {
			return a.client.FetchOne(ctx, r, id)
		})
	}
}

func (a *Auditor) categoryMismatch() []string {
	observed := validate.Categories(a.products)
	declared := slices.Sorted(slices.Values(a.categories))

	if slices.Equal(observed, declared) {
		return nil
	}

	return []string{fmt.Sprintf("got categories %q, expected %q", observed, declared)}
}

func (a *Auditor) emptyCategories() []string {
	var out []string

	for _, category := range validate.EmptyCategories(a.products, a.categories) {
		out = append(out, fmt.Sprintf("category %q has no products", category))
	}

	return out
}

func (a *Auditor) cartsWithoutQuantity() []string {
	var out []string

	for _, id := range validate.CartsWithoutQuantity(a.carts) {
		out = append(out, fmt.Sprintf("cart id=%v has no product with a positive quantity", id))
	}

	return out
}

func (a *Auditor) schemaErrors(name string, collection []validate.Entry) []string {
	errs := a.schemas.ValidateAll(name, collection)

	indices := make([]int, 0, len(errs))
	for i := range errs {
		indices = append(indices, i)
	}

	slices.Sort(indices)

	out := make([]string, 0, len(indices))

	for _, i := range indices {
		out = append(out, fmt.Sprintf("entry %d (id=%v): %v", i, collection[i]["id"], errs[i]))
	}

	return out
}

func duplicates(collection []validate.Entry, idField, labelField string) []string {
	var out []string

	for _, d := range validate.ValidateUniqueIdentifier(collection, idField, labelField) {
		out = append(out, fmt.Sprintf("duplicate id=%v (%s=%v)", d.ID, labelField, d.Label))
	}

	return out
}

func findings(what string, in []validate.Finding) []string {
	var out []string

	for _, f := range in {
		out = append(out, fmt.Sprintf("%s %v for id=%v", what, f.Value, f.ID))
	}

	return out
}

func references(what string, refs validate.References) []string {
	ids := make([]string, 0, len(refs))
	byKey := make(map[string]any, len(refs))

	for id := range refs {
		k := fmt.Sprint(id)
		ids = append(ids, k)
		byKey[k] = id
	}

	slices.Sort(ids)

	out := make([]string, 0, len(ids))

	for _, k := range ids {
		out = append(out, fmt.Sprintf("%s id=%s referenced by carts %v", what, k, refs[byKey[k]]))
	}

	return out
}
