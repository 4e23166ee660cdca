package history

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxEntries caps each log; appending past the cap evicts the oldest.
const maxEntries = 50

// GuestUser is the namespace used when no authenticated user is present.
const GuestUser = "guest"

// Store keeps the two bounded, newest-first history logs. Storage failures
// never surface to callers: reads degrade to an empty log and writes
// silently no-op, with the failure logged for diagnostics.
//
// Each log mutation is a read-modify-write of the whole serialized log, so
// a per-user lock keeps append-prepend-truncate and upsert atomic under
// concurrent requests.
type Store struct {
	kv KV

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(kv KV) *Store {
	return &Store{
		kv:    kv,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *Store) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

func normalizeUser(userID string) string {
	if userID == "" {
		return GuestUser
	}
	return userID
}

func classificationKey(userID string) string {
	return "history:classifications:" + normalizeUser(userID)
}

func viewedKey(userID string) string {
	return "history:restaurants:" + normalizeUser(userID)
}

// --------------------------------------------------
// Classification log
// --------------------------------------------------

// AppendClassification assigns a fresh id and timestamp, prepends the
// entry and truncates the log to the cap. The stored entry is returned.
func (s *Store) AppendClassification(ctx context.Context, userID string, entry ClassificationEntry) ClassificationEntry {
	lock := s.userLock(normalizeUser(userID))
	lock.Lock()
	defer lock.Unlock()

	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now().UTC()

	entries := s.loadClassifications(ctx, userID)
	entries = append([]ClassificationEntry{entry}, entries...)
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	s.save(ctx, classificationKey(userID), entries)
	return entry
}

func (s *Store) ListClassifications(ctx context.Context, userID string) []ClassificationEntry {
	return s.loadClassifications(ctx, userID)
}

// DeleteClassification removes the entry with the given id; absent ids are
// a no-op, not an error.
func (s *Store) DeleteClassification(ctx context.Context, userID, id string) {
	lock := s.userLock(normalizeUser(userID))
	lock.Lock()
	defer lock.Unlock()

	entries := s.loadClassifications(ctx, userID)
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}

	s.save(ctx, classificationKey(userID), kept)
}

func (s *Store) ClearClassifications(ctx context.Context, userID string) {
	if err := s.kv.Delete(ctx, classificationKey(userID)); err != nil {
		log.Printf("[HISTORY] clear classifications failed: %v", err)
	}
}

func (s *Store) loadClassifications(ctx context.Context, userID string) []ClassificationEntry {
	raw, err := s.kv.Get(ctx, classificationKey(userID))
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Printf("[HISTORY] read classifications failed: %v", err)
		}
		return []ClassificationEntry{}
	}

	var entries []ClassificationEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Printf("[HISTORY] corrupt classification log, treating as empty: %v", err)
		return []ClassificationEntry{}
	}
	return entries
}

// --------------------------------------------------
// Viewed-restaurant log
// --------------------------------------------------

// AppendViewed upserts by BusinessKey: an existing entry for the same
// place is removed wherever it sits, then the fresh entry (new id, new
// timestamp) is prepended. Repeat views move the place to the front.
func (s *Store) AppendViewed(ctx context.Context, userID string, entry ViewedRestaurantEntry) ViewedRestaurantEntry {
	lock := s.userLock(normalizeUser(userID))
	lock.Lock()
	defer lock.Unlock()

	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now().UTC()

	entries := s.loadViewed(ctx, userID)
	kept := entries[:0]
	for _, e := range entries {
		if e.BusinessKey != entry.BusinessKey {
			kept = append(kept, e)
		}
	}

	kept = append([]ViewedRestaurantEntry{entry}, kept...)
	if len(kept) > maxEntries {
		kept = kept[:maxEntries]
	}

	s.save(ctx, viewedKey(userID), kept)
	return entry
}

func (s *Store) ListViewed(ctx context.Context, userID string) []ViewedRestaurantEntry {
	return s.loadViewed(ctx, userID)
}

func (s *Store) DeleteViewed(ctx context.Context, userID, id string) {
	lock := s.userLock(normalizeUser(userID))
	lock.Lock()
	defer lock.Unlock()

	entries := s.loadViewed(ctx, userID)
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}

	s.save(ctx, viewedKey(userID), kept)
}

func (s *Store) ClearViewed(ctx context.Context, userID string) {
	if err := s.kv.Delete(ctx, viewedKey(userID)); err != nil {
		log.Printf("[HISTORY] clear viewed failed: %v", err)
	}
}

func (s *Store) loadViewed(ctx context.Context, userID string) []ViewedRestaurantEntry {
	raw, err := s.kv.Get(ctx, viewedKey(userID))
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Printf("[HISTORY] read viewed failed: %v", err)
		}
		return []ViewedRestaurantEntry{}
	}

	var entries []ViewedRestaurantEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Printf("[HISTORY] corrupt viewed log, treating as empty: %v", err)
		return []ViewedRestaurantEntry{}
	}
	return entries
}

func (s *Store) save(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("[HISTORY] marshal failed for %s: %v", key, err)
		return
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		log.Printf("[HISTORY] write failed for %s: %v", key, err)
	}
}
