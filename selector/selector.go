/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package selector picks one element of a collection uniformly at random.
package selector

import (
	"fmt"
	"math/rand/v2"

	"github.com/suparena/serviceroulette/errors"
	"github.com/suparena/serviceroulette/storagemodels"
)

// Source yields uniformly distributed integers in [0, n) for n > 0.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the math/rand/v2 top-level generator, which is
// randomly seeded and safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// Pick returns items[i] and i for an i drawn uniformly from [0, len(items)).
// An empty slice yields errors.ErrEmptyCollection; no index is drawn.
func Pick[T any](src Source, items []T) (T, int, error) {
	var zero T
	if len(items) == 0 {
		return zero, -1, errors.ErrEmptyCollection
	}

	i := src.IntN(len(items))
	if i < 0 || i >= len(items) {
		return zero, -1, fmt.Errorf("random source returned %d, want [0, %d)", i, len(items))
	}
	return items[i], i, nil
}

// Selector picks records from a scanned collection.
type Selector struct {
	src Source
}

// New returns a Selector drawing from src, or from the shared global
// generator when src is nil.
func New(src Source) *Selector {
	if src == nil {
		src = globalSource{}
	}
	return &Selector{src: src}
}

// NewSeeded returns a reproducible Selector. It is not safe for concurrent use.
func NewSeeded(seed1, seed2 uint64) *Selector {
	return New(rand.New(rand.NewPCG(seed1, seed2)))
}

// Select picks one record of the collection and reports its index.
func (s *Selector) Select(records storagemodels.Collection) (storagemodels.Record, int, error) {
	return Pick(s.src, records)
}
