package memstore

import (
	"context"
	"sync"

	"github.com/cognicore/deduce/pkg/deduce/internalerr"
	"github.com/cognicore/deduce/pkg/deduce/transcript"
)

// Store is an in-memory implementation of transcript.Store.
type Store struct {
	mu        sync.RWMutex
	exchanges []transcript.Exchange
	closed    bool
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{}
}

// Close implements transcript.Store. Further calls fail.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Append implements transcript.Store.
func (s *Store) Append(ctx context.Context, ex transcript.Exchange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return internalerr.ErrStoreUnavailable
	}
	s.exchanges = append(s.exchanges, ex)
	return nil
}

// Recent implements transcript.Store.
func (s *Store) Recent(ctx context.Context, limit int) ([]transcript.Exchange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, internalerr.ErrStoreUnavailable
	}

	n := len(s.exchanges)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]transcript.Exchange, 0, n)
	for i := len(s.exchanges) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.exchanges[i])
	}
	return out, nil
}
