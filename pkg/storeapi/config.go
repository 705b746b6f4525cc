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

package storeapi

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

var errNegativeDuration = errors.New("duration must not be negative")

//nolint:gochecknoglobals
var defaultCategories = []string{"electronics", "jewelery", "men's clothing", "women's clothing"}

// TestConfig is loaded once per process and treated as read only.
// Use WithBaseURL to derive a modified copy.
type TestConfig struct {
	// BaseURL of the API under test. When empty the suites serve the
	// in-process fake store instead.
	BaseURL        string
	ProductsPath   string
	CartsPath      string
	UsersPath      string
	AuthPath       string
	Categories     []string
	RequestTimeout time.Duration
	LogFile        string
	// DataSeed makes generated data reproducible, zero means unseeded.
	DataSeed        uint64
	SkipIntegration bool
	DebugLogging    bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if any value is malformed.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	env := &envReader{}

	config := &TestConfig{
		BaseURL:         strings.TrimSuffix(os.Getenv("API_BASE_URL"), "/"),
		ProductsPath:    getStringWithDefault("PRODUCTS_PATH", "/products"),
		CartsPath:       getStringWithDefault("CARTS_PATH", "/carts"),
		UsersPath:       getStringWithDefault("USERS_PATH", "/users"),
		AuthPath:        getStringWithDefault("AUTH_PATH", "/auth/login"),
		Categories:      getListWithDefault("PRODUCT_CATEGORIES", defaultCategories),
		RequestTimeout:  env.durationWithDefault("REQUEST_TIMEOUT", 0),
		LogFile:         getStringWithDefault("TEST_LOG_FILE", "test_log.log"),
		DataSeed:        env.uintWithDefault("DATA_SEED", 0),
		SkipIntegration: env.boolWithDefault("SKIP_INTEGRATION", false),
		DebugLogging:    env.boolWithDefault("DEBUG_LOGGING", false),
	}

	if err := validateFields(config, env.malformed); err != nil {
		return nil, err
	}

	return config, nil
}

// WithBaseURL returns a copy of the configuration targeting another host.
func (c *TestConfig) WithBaseURL(baseURL string) *TestConfig {
	out := *c
	out.BaseURL = strings.TrimSuffix(baseURL, "/")
	out.Categories = slices.Clone(c.Categories)

	return &out
}

// CategoryList returns a copy of the declared product categories.
func (c *TestConfig) CategoryList() []string {
	return slices.Clone(c.Categories)
}

func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getListWithDefault splits a comma separated variable, dropping blanks.
func getListWithDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return slices.Clone(defaultValue)
	}

	var out []string

	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// envReader parses typed variables, recording the ones that are set but
// malformed so they can be reported together.
type envReader struct {
	malformed []string
}

func (e *envReader) parse(key string, parse func(string) error) {
	value := os.Getenv(key)
	if value == "" {
		return
	}

	if err := parse(value); err != nil {
		e.malformed = append(e.malformed, fmt.Sprintf("%s is malformed: %v", key, err))
	}
}

func (e *envReader) durationWithDefault(key string, defaultValue time.Duration) time.Duration {
	out := defaultValue

	e.parse(key, func(value string) error {
		duration, err := time.ParseDuration(value)
		if err != nil {
			return err
		}

		if duration < 0 {
			return errNegativeDuration
		}

		out = duration

		return nil
	})

	return out
}

func (e *envReader) boolWithDefault(key string, defaultValue bool) bool {
	out := defaultValue

	e.parse(key, func(value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}

		out = b

		return nil
	})

	return out
}

func (e *envReader) uintWithDefault(key string, defaultValue uint64) uint64 {
	out := defaultValue

	e.parse(key, func(value string) error {
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}

		out = n

		return nil
	})

	return out
}

func loadEnvFile() {
	envPaths := []string{
		".env",          // From the repository root
		"../../.env",    // From pkg/storeapi or test/api
		"../../../.env", // From test/api/suites
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing environment variables take precedence.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateFields checks the loaded values are usable.
func validateFields(config *TestConfig, malformed []string) error {
	problems := slices.Clone(malformed)

	if config.BaseURL != "" {
		u, err := url.Parse(config.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			problems = append(problems, "API_BASE_URL must be an absolute http(s) URL")
		}
	}

	paths := map[string]string{
		"PRODUCTS_PATH": config.ProductsPath,
		"CARTS_PATH":    config.CartsPath,
		"USERS_PATH":    config.UsersPath,
		"AUTH_PATH":     config.AuthPath,
	}

	for _, envVar := range slices.Sorted(maps.Keys(paths)) {
		if !strings.HasPrefix(paths[envVar], "/") {
			problems = append(problems, envVar+" must start with /")
		}
	}

	if len(config.Categories) == 0 {
		problems = append(problems, "PRODUCT_CATEGORIES must name at least one category")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}
