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
	"github.com/spjmurray/go-util/pkg/set"
)

// References maps an identifier that is referenced but does not exist to
// the ids of the carts that reference it.
type References map[any][]any

// CartUserReferences returns carts whose userId names no listed user.
func CartUserReferences(carts, users []Entry) References {
	referenced := make([]any, 0, len(carts))

	for _, cart := range carts {
		if userID, ok := cart["userId"]; ok {
			referenced = append(referenced, key(userID))
		}
	}

	return danglingReferences(carts, referenced, users, func(cart Entry, id any) bool {
		return key(cart["userId"]) == id
	})
}

// CartProductReferences returns carts with lines whose productId names no
// listed product.
func CartProductReferences(carts, products []Entry) References {
	var referenced []any

	for _, cart := range carts {
		for _, line := range CartLines(cart) {
			if productID, ok := line["productId"]; ok {
				referenced = append(referenced, key(productID))
			}
		}
	}

	return danglingReferences(carts, referenced, products, func(cart Entry, id any) bool {
		for _, line := range CartLines(cart) {
			if key(line["productId"]) == id {
				return true
			}
		}

		return false
	})
}

func danglingReferences(carts []Entry, referenced []any, targets []Entry, references func(Entry, any) bool) References {
	existing := make([]any, 0, len(targets))

	for _, target := range targets {
		if id, ok := target["id"]; ok {
			existing = append(existing, key(id))
		}
	}

	missing := set.New[any](referenced...).Difference(set.New[any](existing...))

	out := References{}

	for id := range missing.All() {
		cartIDs := []any{}

		for _, cart := range carts {
			if references(cart, id) {
				cartIDs = append(cartIDs, cart["id"])
			}
		}

		out[id] = cartIDs
	}

	return out
}

// CartLines returns the product lines of a cart. Decoded JSON yields []any,
// payloads built in code may use []Entry directly.
func CartLines(cart Entry) []Entry {
	switch lines := cart["products"].(type) {
	case []Entry:
		return lines
	case []any:
		out := make([]Entry, 0, len(lines))

		for _, line := range lines {
			if entry, ok := line.(Entry); ok {
				out = append(out, entry)
			}
		}

		return out
	}

	return nil
}
