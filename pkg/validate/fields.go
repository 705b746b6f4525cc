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

package validate

import (
	"encoding/json"
	"regexp"
	"slices"
)

// emailPattern is deliberately loose: something, an @, something, a dot,
// something, with no further @ anywhere.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Finding pairs an entity id with the offending field value.
type Finding struct {
	ID    any
	Value any
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// InvalidEmails returns users whose email is missing, not a string or
// malformed.
func InvalidEmails(users []Entry) []Finding {
	var invalid []Finding

	for _, user := range users {
		email, _ := user["email"].(string)

		if !ValidEmail(email) {
			invalid = append(invalid, Finding{ID: user["id"], Value: user["email"]})
		}
	}

	return invalid
}

// InvalidPrices returns products whose price is not a positive number.
func InvalidPrices(products []Entry) []Finding {
	var invalid []Finding

	for _, product := range products {
		if price, ok := Number(product["price"]); !ok || price <= 0 {
			invalid = append(invalid, Finding{ID: product["id"], Value: product["price"]})
		}
	}

	return invalid
}

// HasPositiveQuantity reports whether the cart holds at least one line with
// a quantity above zero.
func HasPositiveQuantity(cart Entry) bool {
	for _, line := range CartLines(cart) {
		if quantity, ok := Number(line["quantity"]); ok && quantity > 0 {
			return true
		}
	}

	return false
}

// CartsWithoutQuantity returns the ids of carts that fail HasPositiveQuantity.
func CartsWithoutQuantity(carts []Entry) []any {
	var invalid []any

	for _, cart := range carts {
		if !HasPositiveQuantity(cart) {
			invalid = append(invalid, cart["id"])
		}
	}

	return invalid
}

// Categories returns the distinct, sorted categories found in products.
func Categories(products []Entry) []string {
	var categories []string

	for _, product := range products {
		if category, ok := product["category"].(string); ok && !slices.Contains(categories, category) {
			categories = append(categories, category)
		}
	}

	slices.Sort(categories)

	return categories
}

// EmptyCategories returns the declared categories that no product belongs to.
func EmptyCategories(products []Entry, declared []string) []string {
	counts := make(map[string]int, len(declared))

	for _, product := range products {
		if category, ok := product["category"].(string); ok {
			counts[category]++
		}
	}

	var empty []string

	for _, category := range declared {
		if counts[category] == 0 {
			empty = append(empty, category)
		}
	}

	return empty
}

// Number converts a decoded JSON number, or a Go numeric literal used in a
// hand built payload, to a float64.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}

	return 0, false
}
