/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.Scanner for testing
package mock

import (
	"context"
	"sync"

	"github.com/suparena/serviceroulette/storagemodels"
)

// DataStore is a mock implementation of datastore.Scanner[T] for testing
type DataStore[T any] struct {
	mu         sync.RWMutex
	items      []T
	scanFunc   func(ctx context.Context, params *storagemodels.ScanParams, opts ...storagemodels.ScanOption) ([]T, error)
	scanError  error
	calls      int
	lastParams *storagemodels.ScanParams
}

// New creates a new mock DataStore holding items in scan order
func New[T any](items ...T) *DataStore[T] {
	return &DataStore[T]{
		items: append([]T(nil), items...),
	}
}

// WithScanFunc sets a custom scan function for testing
func (m *DataStore[T]) WithScanFunc(f func(ctx context.Context, params *storagemodels.ScanParams, opts ...storagemodels.ScanOption) ([]T, error)) *DataStore[T] {
	m.scanFunc = f
	return m
}

// WithScanError makes Scan operations return an error
func (m *DataStore[T]) WithScanError(err error) *DataStore[T] {
	m.scanError = err
	return m
}

// Scan returns a copy of every stored item
func (m *DataStore[T]) Scan(ctx context.Context, params *storagemodels.ScanParams, opts ...storagemodels.ScanOption) ([]T, error) {
	m.mu.Lock()
	m.calls++
	m.lastParams = params
	m.mu.Unlock()

	if m.scanFunc != nil {
		return m.scanFunc(ctx, params, opts...)
	}
	if m.scanError != nil {
		return nil, m.scanError
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]T, len(m.items))
	copy(result, m.items)
	return result, nil
}

// Helper methods for testing

// SetItems replaces the stored items
func (m *DataStore[T]) SetItems(items ...T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]T(nil), items...)
}

// Calls returns how many times Scan was invoked
func (m *DataStore[T]) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// LastParams returns the params of the most recent Scan
func (m *DataStore[T]) LastParams() *storagemodels.ScanParams {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastParams
}

// Count returns the number of stored items
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Clear removes all items
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
}
