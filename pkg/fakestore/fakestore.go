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

// Package fakestore serves an in-process stand-in for the Fake Store API.
// Writes are validated and echoed back but never persisted, so every
// request observes the seed dataset.
package fakestore

import (
	"crypto/rand"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"

	"github.com/storeqa/fakestore-suite/pkg/schema"
	"github.com/storeqa/fakestore-suite/pkg/validate"
)

//go:embed data/seed.json
var seed []byte

var (
	errNotObject    = errors.New("request body must be a JSON object")
	errInvalidID    = errors.New("id must be an integer")
	errNotFound     = errors.New("resource not found")
	errDuplicateID  = errors.New("id already exists")
	errUnauthorized = errors.New("username or password is incorrect")
)

// Dataset is the content served by the store.
type Dataset struct {
	Products []validate.Entry `json:"products"`
	Users    []validate.Entry `json:"users"`
	Carts    []validate.Entry `json:"carts"`
}

// DefaultDataset decodes a fresh copy of the embedded seed data.
func DefaultDataset() (*Dataset, error) {
	data := &Dataset{}

	if err := json.Unmarshal(seed, data); err != nil {
		return nil, fmt.Errorf("decoding seed dataset: %w", err)
	}

	return data, nil
}

// collection describes how one resource validates writes.
type collection struct {
	name    string
	schema  string
	entries []validate.Entry

	// uniqueID rejects creation when the posted id already exists.
	uniqueID bool

	// assignID allocates the next free id on creation.
	assignID bool
}

// Server is an http.Handler implementing the store routes.
type Server struct {
	dataset *Dataset
	schemas *schema.Validator
	log     logr.Logger
	router  chi.Router
}

// New creates a store serving the given dataset.
func New(dataset *Dataset, log logr.Logger) (*Server, error) {
	schemas, err := schema.Load()
	if err != nil {
		return nil, err
	}

	s := &Server{
		dataset: dataset,
		schemas: schemas,
		log:     log.WithName("fakestore"),
	}

	router := chi.NewRouter()
	router.Use(s.logRequests)

	s.mount(router, &collection{name: "products", schema: schema.Product, entries: dataset.Products, assignID: true})
	s.mount(router, &collection{name: "users", schema: schema.User, entries: dataset.Users})
	s.mount(router, &collection{name: "carts", schema: schema.Cart, entries: dataset.Carts, uniqueID: true})

	router.Post("/auth/login", s.login)

	s.router = router

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) mount(router chi.Router, c *collection) {
	base := "/" + c.name

	router.Get(base, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, c.entries)
	})
	router.Post(base, func(w http.ResponseWriter, r *http.Request) {
		s.create(w, r, c)
	})

	// An empty id never names an item.
	router.HandleFunc(base+"/", http.NotFound)

	router.Get(base+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		if _, entry, ok := s.lookup(w, r, c); ok {
			writeJSON(w, http.StatusOK, entry)
		}
	})
	router.Put(base+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.update(w, r, c)
	})
	router.Delete(base+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		if _, entry, ok := s.lookup(w, r, c); ok {
			writeJSON(w, http.StatusOK, entry)
		}
	})
}

func (s *Server) create(w http.ResponseWriter, r *http.Request, c *collection) {
	body, ok := s.decode(w, r, c.schema)
	if !ok {
		return
	}

	if c.uniqueID && find(c.entries, body["id"]) != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %v", errDuplicateID, body["id"]))
		return
	}

	if c.assignID {
		body["id"] = nextID(c.entries)
	}

	writeJSON(w, http.StatusCreated, body)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request, c *collection) {
	id, _, ok := s.lookup(w, r, c)
	if !ok {
		return
	}

	body, ok := s.decode(w, r, c.schema)
	if !ok {
		return
	}

	body["id"] = id

	writeJSON(w, http.StatusOK, body)
}

// lookup resolves the {id} URL parameter, writing the error response
// itself when it cannot.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request, c *collection) (int, validate.Entry, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errInvalidID)
		return 0, nil, false
	}

	entry := find(c.entries, id)
	if entry == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w: %s %d", errNotFound, c.name, id))
		return 0, nil, false
	}

	return id, entry, true
}

// decode reads a JSON object body and checks it against the named schema.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, name string) (validate.Entry, bool) {
	var body validate.Entry

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body == nil {
		writeError(w, http.StatusBadRequest, errNotObject)
		return nil, false
	}

	if err := s.schemas.Validate(name, body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}

	return body, true
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decode(w, r, schema.Credentials)
	if !ok {
		return
	}

	for _, user := range s.dataset.Users {
		if user["username"] == body["username"] && user["password"] == body["password"] {
			writeJSON(w, http.StatusCreated, map[string]string{"token": token()})
			return
		}
	}

	writeError(w, http.StatusUnauthorized, errUnauthorized)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.log.V(1).Info("served", "method", r.Method, "path", r.URL.Path, "status", ww.Status())
	})
}

// find returns the entry whose id equals the given numeric id.
func find(entries []validate.Entry, id any) validate.Entry {
	want, ok := validate.Number(id)
	if !ok {
		return nil
	}

	for _, entry := range entries {
		if got, ok := validate.Number(entry["id"]); ok && got == want {
			return entry
		}
	}

	return nil
}

func nextID(entries []validate.Entry) int {
	var highest float64

	for _, entry := range entries {
		if id, ok := validate.Number(entry["id"]); ok && id > highest {
			highest = id
		}
	}

	return int(highest) + 1
}

func token() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"message": err.Error()})
}
