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

import (
	"errors"
	"log/slog"
	"slices"
)

// Builder accumulates intervals and coalesces them once in Build.
// It is cheaper than repeated Insert calls when many intervals arrive
// out of order.
//
// Invalid intervals are rejected by Add and also remembered, so a caller
// that ignores Add's result still gets every rejection back from Build.
//
// A Builder is not safe for concurrent use.
//
// Example:
//
//	b := intervalset.NewBuilder(intervalset.WithCapacity(len(spans)))
//	for _, sp := range spans {
//	    b.AddRange(sp.From, sp.To)
//	}
//	set, err := b.Build()
type Builder struct {
	pending []Interval
	errs    []error
	options BuilderOptions
}

// NewBuilder creates an empty builder configured by opts.
func NewBuilder(opts ...BuilderOption) *Builder {
	options := defaultBuilderOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Builder{
		pending: make([]Interval, 0, options.Capacity),
		options: options,
	}
}

func (b *Builder) debug(msg string, args ...any) {
	if b.options.Logger != nil {
		b.options.Logger.Debug(msg, args...)
	}
}

// Add queues iv for the next Build.
func (b *Builder) Add(iv Interval) error {
	if err := iv.validate(); err != nil {
		b.errs = append(b.errs, err)
		b.debug("rejected interval", slog.String("interval", iv.String()))
		return err
	}
	b.pending = append(b.pending, iv)
	return nil
}

// AddRange queues [start, end) for the next Build.
func (b *Builder) AddRange(start, end float64) error {
	return b.Add(Interval{start: start, end: end})
}

// AddSet queues every interval of s.
func (b *Builder) AddSet(s *Set) {
	b.pending = append(b.pending, s.elems()...)
}

// Len returns the number of queued intervals.
func (b *Builder) Len() int {
	return len(b.pending)
}

// Reset discards queued intervals and remembered errors.
func (b *Builder) Reset() {
	b.pending = b.pending[:0]
	b.errs = nil
}

// Build returns the canonical set of everything queued so far.
// It fails if any Add was rejected, joining every rejection. The builder
// keeps its queue, so further Adds extend the same set.
func (b *Builder) Build() (*Set, error) {
	if len(b.errs) > 0 {
		b.debug("build failed", slog.Int("rejected", len(b.errs)))
		return nil, errors.Join(b.errs...)
	}

	set := &Set{intervals: normalizeIntervals(slices.Clone(b.pending))}
	b.debug("built interval set",
		slog.Int("pending", len(b.pending)),
		slog.Int("intervals", set.Len()),
	)

	if b.options.StrictValidation {
		if err := set.Validate(); err != nil {
			return nil, err
		}
	}
	return set, nil
}
