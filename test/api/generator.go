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

package api

import (
	"slices"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/storeqa/fakestore-suite/pkg/storeapi"
)

//go:generate mockgen -source=generator.go -destination=mock/generator.go -package=mock

const (
	minGeneratedID = 1000
	maxGeneratedID = 1999
	passwordLength = 8
)

//nolint:gochecknoglobals
var freeEmailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "proton.me"}

// DataGenerator produces synthetic records for create and update requests.
// Values are random, tests must not assume generated ids do or do not
// collide with server data.
type DataGenerator interface {
	// GenerateUser returns a complete user with an id in [1000, 1999].
	GenerateUser() storeapi.User
	// GenerateProduct returns a complete product without an id.
	GenerateProduct() storeapi.Product
	RandomID() int
	RandomUsername() string
	RandomPassword() string
	// Index returns a uniform index in [0, n).
	Index(n int) int
}

// FakerGenerator is the gofakeit backed DataGenerator.
type FakerGenerator struct {
	faker      *gofakeit.Faker
	categories []string
}

var _ DataGenerator = &FakerGenerator{}

// NewDataGenerator creates a generator. A zero seed draws from a random
// source, anything else yields a reproducible sequence.
func NewDataGenerator(seed uint64, categories []string) *FakerGenerator {
	return &FakerGenerator{
		faker:      gofakeit.New(seed),
		categories: slices.Clone(categories),
	}
}

func (g *FakerGenerator) GenerateUser() storeapi.User {
	username := g.RandomUsername()

	return storeapi.User{
		ID:       g.RandomID(),
		Username: username,
		Email:    username + "@" + g.faker.RandomString(freeEmailDomains),
		Password: g.RandomPassword(),
	}
}

func (g *FakerGenerator) GenerateProduct() storeapi.Product {
	return storeapi.Product{
		Title:       g.faker.ProductName(),
		Price:       g.faker.Price(1, 500),
		Description: g.faker.ProductDescription(),
		Category:    g.faker.RandomString(g.categories),
		Image:       g.faker.URL(),
	}
}

func (g *FakerGenerator) RandomID() int {
	return g.faker.IntRange(minGeneratedID, maxGeneratedID)
}

// RandomUsername concatenates a first and last name.
func (g *FakerGenerator) RandomUsername() string {
	return g.faker.FirstName() + g.faker.LastName()
}

func (g *FakerGenerator) RandomPassword() string {
	return g.faker.Password(true, true, true, true, false, passwordLength)
}

func (g *FakerGenerator) Index(n int) int {
	if n <= 1 {
		return 0
	}

	return g.faker.IntRange(0, n-1)
}
