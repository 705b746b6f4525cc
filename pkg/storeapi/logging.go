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
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogTimeLayout is the timestamp layout of run log lines.
const LogTimeLayout = "2006-01-02 15:04:05,000"

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout(LogTimeLayout),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " - ",
	}
}

// NewRunLogger opens the run log at path, truncating any previous run, and
// returns a logger writing "timestamp - LEVEL - message" lines to it and to
// every extra writer. The returned function flushes and closes the file.
func NewRunLogger(path string, debug bool, extra ...io.Writer) (logr.Logger, func() error, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC|os.O_APPEND, 0o644)
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("opening log file: %w", err)
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	encoder := zapcore.NewConsoleEncoder(encoderConfig())

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(file), level),
	}

	for _, w := range extra {
		cores = append(cores, zapcore.NewCore(encoder.Clone(), zapcore.AddSync(w), level))
	}

	logger := zap.New(zapcore.NewTee(cores...))

	closer := func() error {
		// Sync on a tee reports errors from writers such as terminals
		// that cannot be synced, only the file result matters.
		_ = logger.Sync()

		return errors.Join(file.Sync(), file.Close())
	}

	return zapr.NewLoggerWithOptions(logger, zapr.LogInfoLevel("")), closer, nil
}
