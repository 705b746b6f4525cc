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

// Package validate holds the pure checks the suites run over fetched
// resources. Nothing here performs I/O; single-item lookups are supplied
// by the caller.
package validate

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Entry is a decoded JSON object as returned by a collection endpoint.
type Entry = map[string]any

// FetchFunc returns the single-endpoint representation of the entity with
// the given id.
type FetchFunc func(id any) (Entry, error)

// Duplicate is an entry whose identifier is shared with another entry.
type Duplicate struct {
	ID    any
	Label any
}

// ValidateIDConsistency checks that every entity in the collection is
// returned unchanged by its single endpoint. The collection is indexed by
// "id" and the last entry wins when an id repeats, so earlier duplicates
// are never compared. Use ValidateUniqueIdentifier to surface those.
// Ids are visited in order of first appearance and one description is
// returned per mismatching id.
func ValidateIDConsistency(collection []Entry, fetch FetchFunc) ([]string, error) {
	order := make([]any, 0, len(collection))
	ids := make(map[any]any, len(collection))
	entries := make(map[any]Entry, len(collection))

	for _, entry := range collection {
		id := entry["id"]
		k := key(id)

		if _, ok := entries[k]; !ok {
			order = append(order, k)
			ids[k] = id
		}

		entries[k] = entry
	}

	var failures []string

	for _, k := range order {
		id := ids[k]
		expected := entries[k]

		got, err := fetch(id)
		if err != nil {
			return nil, fmt.Errorf("fetching id=%v: %w", id, err)
		}

		if !cmp.Equal(expected, got) {
			failures = append(failures, fmt.Sprintf("mismatch for id=%v (-expected +got):\n%s", id, cmp.Diff(expected, got)))
		}
	}

	return failures, nil
}

// ValidateUniqueIdentifier reports every entry whose idField value occurs
// more than once. Each offending entry is reported on its own, in
// collection order, paired with its labelField value.
func ValidateUniqueIdentifier(collection []Entry, idField, labelField string) []Duplicate {
	counts := make(map[any]int, len(collection))

	for _, entry := range collection {
		counts[key(entry[idField])]++
	}

	var duplicates []Duplicate

	for _, entry := range collection {
		if counts[key(entry[idField])] > 1 {
			duplicates = append(duplicates, Duplicate{
				ID:    entry[idField],
				Label: entry[labelField],
			})
		}
	}

	return duplicates
}

// key maps a decoded JSON value to something usable as a map key.
// Numbers are keyed as float64 so a decoded 1 and a literal int 1 collide.
// Objects and arrays are not comparable, so they are keyed by their
// printed form.
func key(v any) any {
	if n, ok := Number(v); ok {
		return n
	}

	switch v.(type) {
	case nil, bool, string:
		return v
	}

	return fmt.Sprintf("%v", v)
}
