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

package main

import (
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/storeqa/fakestore-suite/pkg/audit"
	"github.com/storeqa/fakestore-suite/pkg/fakestore"
	"github.com/storeqa/fakestore-suite/pkg/schema"
	"github.com/storeqa/fakestore-suite/pkg/storeapi"
)

const (
	exitFindings = 1
	exitError    = 2
)

// Options override the environment configuration when set.
type Options struct {
	BaseURL string
	LogFile string
	Fake    bool
	Debug   bool
}

// AddFlags registers the options with a flag set.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.BaseURL, "base-url", "", "Base URL of the store to audit, defaults to API_BASE_URL.")
	f.StringVar(&o.LogFile, "log-file", "", "Run log path, defaults to TEST_LOG_FILE.")
	f.BoolVar(&o.Fake, "fake", false, "Audit the in-process fake store.")
	f.BoolVar(&o.Debug, "debug", false, "Enable request tracing in the run log.")
}

func main() {
	var options Options

	options.AddFlags(pflag.CommandLine)

	pflag.Parse()

	os.Exit(run(&options))
}

func run(options *Options) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := storeapi.LoadTestConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}

	if options.BaseURL != "" {
		config = config.WithBaseURL(options.BaseURL)
	}

	logFile := config.LogFile
	if options.LogFile != "" {
		logFile = options.LogFile
	}

	logger, closeLog, err := storeapi.NewRunLogger(logFile, options.Debug || config.DebugLogging, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}

	defer func() {
		_ = closeLog()
	}()

	if options.Fake || config.BaseURL == "" {
		dataset, err := fakestore.DefaultDataset()
		if err != nil {
			logger.Error(err, "loading fake store dataset")
			return exitError
		}

		store, err := fakestore.New(dataset, logger)
		if err != nil {
			logger.Error(err, "creating fake store")
			return exitError
		}

		server := httptest.NewServer(store)
		defer server.Close()

		config = config.WithBaseURL(server.URL)
	}

	logger.Info("audit starting", "baseURL", config.BaseURL)

	schemas, err := schema.Load()
	if err != nil {
		logger.Error(err, "loading schemas")
		return exitError
	}

	findings, err := audit.New(storeapi.NewAPIClient(config, logger), schemas, config.CategoryList(), logger).Run(ctx)
	if err != nil {
		logger.Error(err, "audit aborted")
		return exitError
	}

	if len(findings) > 0 {
		for _, finding := range findings {
			fmt.Println(finding)
		}

		logger.Info("audit failed", "findings", len(findings))

		return exitFindings
	}

	logger.Info("audit passed")

	return 0
}
