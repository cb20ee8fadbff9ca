// Package userdb implements UserStore using BadgerHold. All user domain
// data (portfolios, alerts, expenses, subscriptions) is stored as generic
// Record entries.
package userdb

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/timshannon/badgerhold/v4"

	"github.com/Pranav-1100/finagent/internal/common"
	"github.com/Pranav-1100/finagent/internal/interfaces"
	"github.com/Pranav-1100/finagent/internal/models"
)

// Store implements interfaces.UserStore using BadgerHold.
type Store struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// NewStore creates a new UserStore backed by BadgerHold.
func NewStore(logger *common.Logger, path string) (*Store, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create userdb path %s: %w", path, err)
	}
	opts := badgerhold.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path
	opts.Logger = nil
	db, err := badgerhold.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open userdb at %s: %w", path, err)
	}
	logger.Info().Str("path", path).Msg("UserDB opened")
	return &Store{db: db, logger: logger}, nil
}

// keySep is the composite key separator. Using a null byte prevents
// collisions when subject or key contain ":" characters.
const keySep = "\x00"

func compositeKey(subject, key string) string {
	return subject + keySep + key
}

func (s *Store) Get(_ context.Context, subject, key string) (*models.Record, error) {
	ck := compositeKey(subject, key)
	var rec models.Record
	if err := s.db.Get(ck, &rec); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, fmt.Errorf("%s '%s': %w", subject, key, interfaces.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get %s '%s': %w", subject, key, err)
	}
	return &rec, nil
}

func (s *Store) Put(_ context.Context, record *models.Record) error {
	ck := compositeKey(record.Subject, record.Key)

	// Read existing to increment version
	var existing models.Record
	if err := s.db.Get(ck, &existing); err == nil {
		record.Version = existing.Version + 1
	} else {
		record.Version = 1
	}
	record.DateTime = time.Now()

	if err := s.db.Upsert(ck, record); err != nil {
		return fmt.Errorf("failed to put %s '%s': %w", record.Subject, record.Key, err)
	}
	return nil
}

func (s *Store) Delete(_ context.Context, subject, key string) error {
	ck := compositeKey(subject, key)
	if err := s.db.Delete(ck, models.Record{}); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return fmt.Errorf("%s '%s': %w", subject, key, interfaces.ErrRecordNotFound)
		}
		return fmt.Errorf("failed to delete %s '%s': %w", subject, key, err)
	}
	return nil
}

func (s *Store) List(_ context.Context, subject string) ([]*models.Record, error) {
	var records []*models.Record
	if err := s.db.Find(&records, badgerhold.Where("Subject").Eq(subject)); err != nil {
		return nil, fmt.Errorf("failed to list %s records: %w", subject, err)
	}

	// Oldest first so list output is stable across runs
	sort.Slice(records, func(i, j int) bool {
		if records[i].DateTime.Equal(records[j].DateTime) {
			return records[i].Key < records[j].Key
		}
		return records[i].DateTime.Before(records[j].DateTime)
	})

	return records, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Ensure Store implements UserStore
var _ interfaces.UserStore = (*Store)(nil)
