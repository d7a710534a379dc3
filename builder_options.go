// Copyright 2025 Contriboss
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package intervalset

import "log/slog"

// BuilderOptions configures a Builder.
//
// Options control:
//   - Initial capacity of the pending interval buffer
//   - Post-build canonical form checks
//   - Debug logging of build statistics
type BuilderOptions struct {
	// Capacity preallocates room for this many pending intervals.
	// Default: 0
	Capacity int

	// StrictValidation runs Set.Validate on every built set and returns
	// its error from Build.
	StrictValidation bool

	// Logger enables debug logging of builder operations.
	// When nil, no logging is performed.
	Logger *slog.Logger
}

// BuilderOption is a functional option for configuring a Builder.
type BuilderOption func(*BuilderOptions)

// defaultBuilderOptions returns the default builder configuration.
func defaultBuilderOptions() BuilderOptions {
	return BuilderOptions{}
}

// WithCapacity preallocates room for n pending intervals.
// Negative values are treated as 0.
func WithCapacity(n int) BuilderOption {
	return func(opts *BuilderOptions) {
		opts.Capacity = max(n, 0)
	}
}

// WithStrictValidation enables or disables the canonical form check in Build.
func WithStrictValidation(enabled bool) BuilderOption {
	return func(opts *BuilderOptions) {
		opts.StrictValidation = enabled
	}
}

// WithLogger sets a structured logger for builder diagnostics.
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	b := intervalset.NewBuilder(intervalset.WithLogger(logger))
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(opts *BuilderOptions) {
		opts.Logger = logger
	}
}
