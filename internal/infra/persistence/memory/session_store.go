// Package memory contains in-process implementations of the persistence layer.
// State lives for the lifetime of the process only.
package memory

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
)

// sessionStore implements the repository.SessionStore interface with a guarded map.
type sessionStore struct {
	mu      sync.Mutex
	records map[string]entity.RefreshTokenRecord
	now     func() time.Time
}

// NewSessionStore is the constructor for sessionStore.
func NewSessionStore() repository.SessionStore {
	return NewSessionStoreWithClock(time.Now)
}

// NewSessionStoreWithClock is NewSessionStore with an explicit time source.
func NewSessionStoreWithClock(now func() time.Time) repository.SessionStore {
	return &sessionStore{
		records: make(map[string]entity.RefreshTokenRecord),
		now:     now,
	}
}

// Put replaces whatever record username had.
func (s *sessionStore) Put(_ context.Context, username string, record entity.RefreshTokenRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[username] = entity.NewRefreshTokenRecord(record.Token, record.Expires)

	return nil
}

// ValidateAndGet returns the record for username if presentedToken matches and it is still active.
func (s *sessionStore) ValidateAndGet(_ context.Context, username, presentedToken string) (entity.RefreshTokenRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[username]
	if !ok || !tokensEqual(record.Token, presentedToken) || !record.IsActiveAt(s.now()) {
		return entity.RefreshTokenRecord{}, repository.ErrSessionNotFound
	}

	return record, nil
}

// Revoke deletes the record for username if presentedToken matches it.
func (s *sessionStore) Revoke(_ context.Context, username, presentedToken string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[username]
	if !ok || !tokensEqual(record.Token, presentedToken) {
		return false, nil
	}

	delete(s.records, username)

	return true, nil
}

// PurgeExpired deletes every record that is no longer active.
func (s *sessionStore) PurgeExpired(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for username, record := range s.records {
		if !record.IsActiveAt(now) {
			delete(s.records, username)
			removed++
		}
	}

	return removed, nil
}

// Count returns the number of stored records.
func (s *sessionStore) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records), nil
}

func tokensEqual(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}
