// Package store caches enumerated bag results between runs.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/bagfill"
)

type Store interface {
	// Get returns the cached results for a bag size, if any.
	Get(ctx context.Context, width, height int) (*bagfill.ResultSet, bool, error)
	Put(ctx context.Context, rs *bagfill.ResultSet) error
	Close() error
}

func sizeKey(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}

// Memory keeps results for the life of the process.
type Memory struct {
	results map[string]*bagfill.ResultSet

	*sync.Mutex
}

func NewMemory() *Memory {
	return &Memory{results: make(map[string]*bagfill.ResultSet), Mutex: new(sync.Mutex)}
}

func (m *Memory) Get(ctx context.Context, width, height int) (*bagfill.ResultSet, bool, error) {
	m.Lock()
	defer m.Unlock()

	rs, ok := m.results[sizeKey(width, height)]
	return rs, ok, nil
}

func (m *Memory) Put(ctx context.Context, rs *bagfill.ResultSet) error {
	m.Lock()
	defer m.Unlock()

	m.results[sizeKey(rs.Width, rs.Height)] = rs
	return nil
}

func (m *Memory) Close() error {
	return nil
}
