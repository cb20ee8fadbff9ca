// Package memstore implements an in-memory UserStore. It backs unit tests
// and the ":memory:" storage path for throwaway development runs.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Pranav-1100/finagent/internal/interfaces"
	"github.com/Pranav-1100/finagent/internal/models"
)

// Store implements interfaces.UserStore with a mutex-guarded map.
type Store struct {
	mu      sync.RWMutex
	records map[string]models.Record
	seq     int // tiebreaker for records created within the same clock tick
	order   map[string]int
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]models.Record),
		order:   make(map[string]int),
	}
}

func compositeKey(subject, key string) string {
	return subject + "\x00" + key
}

func (s *Store) Get(_ context.Context, subject, key string) (*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[compositeKey(subject, key)]
	if !ok {
		return nil, fmt.Errorf("%s '%s': %w", subject, key, interfaces.ErrRecordNotFound)
	}
	return &rec, nil
}

func (s *Store) Put(_ context.Context, record *models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ck := compositeKey(record.Subject, record.Key)
	if existing, ok := s.records[ck]; ok {
		record.Version = existing.Version + 1
	} else {
		record.Version = 1
		s.seq++
		s.order[ck] = s.seq
	}
	record.DateTime = time.Now()
	s.records[ck] = *record
	return nil
}

func (s *Store) Delete(_ context.Context, subject, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ck := compositeKey(subject, key)
	if _, ok := s.records[ck]; !ok {
		return fmt.Errorf("%s '%s': %w", subject, key, interfaces.ErrRecordNotFound)
	}
	delete(s.records, ck)
	delete(s.order, ck)
	return nil
}

func (s *Store) List(_ context.Context, subject string) ([]*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Record
	for _, rec := range s.records {
		if rec.Subject == subject {
			r := rec
			out = append(out, &r)
		}
	}
	// Insertion order, like the durable store's oldest-first listing
	sort.Slice(out, func(i, j int) bool {
		return s.order[compositeKey(subject, out[i].Key)] < s.order[compositeKey(subject, out[j].Key)]
	})
	return out, nil
}

func (s *Store) Close() error {
	return nil
}

// Ensure Store implements UserStore
var _ interfaces.UserStore = (*Store)(nil)
