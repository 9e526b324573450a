package storage

import (
	"sync"

	json "github.com/goccy/go-json"
	"go.uber.org/atomic"

	"dirfav/internal/providers"
)

const availabilityProbeKey = "__storage_test__"

// PersisterInterface is what the store calls after every mutation. Set by
// the scheduler during Init to break the construction cycle between the
// store and its file manager.
type PersisterInterface interface {
	Persist() error
}

type KVStoreInterface interface {
	Get(key string) (string, bool)
	Set(key, value string)
	GetJSON(key string, out any) bool
	SetJSON(key string, value any)
	Remove(key string)
	Clear()
	Keys() []string
	IsAvailable() bool
	EstimateSizeBytes() int

	Snapshot() map[string]string
	PutEntries(entries map[string]string)
	Dirty() bool
	SetPersister(p PersisterInterface)
}

// KVStore keeps the whole partition in memory and writes it through to the
// partition file after every mutation. Write failures are logged and
// swallowed; callers cannot tell a failed write from a successful one.
type KVStore struct {
	mu        sync.RWMutex
	entries   map[string]string
	dirty     atomic.Bool
	persister PersisterInterface
	logger    providers.Logger
}

func NewKVStore(logger providers.Logger) KVStoreInterface {
	return &KVStore{
		entries: make(map[string]string),
		logger:  logger,
	}
}

func (s *KVStore) SetPersister(p PersisterInterface) {
	s.persister = p
}

func (s *KVStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.entries[key]
	return val, ok
}

func (s *KVStore) GetJSON(key string, out any) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		s.logger.Warnf(providers.TypeStorage, "Corrupt value for key %q treated as absent: %s", key, err)
		return false
	}
	return true
}

func (s *KVStore) Set(key, value string) {
	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
	s.flush()
}

func (s *KVStore) SetJSON(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Errorf(providers.TypeStorage, "Failed to encode value for key %q: %s", key, err)
		return
	}
	s.Set(key, string(data))
}

func (s *KVStore) Remove(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	s.flush()
}

func (s *KVStore) Clear() {
	s.mu.Lock()
	s.entries = make(map[string]string)
	s.mu.Unlock()
	s.flush()
}

func (s *KVStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}

// IsAvailable probes a set/remove round trip through the normal write path.
func (s *KVStore) IsAvailable() bool {
	s.mu.Lock()
	s.entries[availabilityProbeKey] = availabilityProbeKey
	delete(s.entries, availabilityProbeKey)
	s.mu.Unlock()
	if s.persister == nil {
		return true
	}
	return s.persister.Persist() == nil
}

// EstimateSizeBytes sums key and value lengths over every entry in the
// partition, foreign keys included. An approximation, not an exact count.
func (s *KVStore) EstimateSizeBytes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for k, v := range s.entries {
		total += len(k) + len(v)
	}
	return total
}

func (s *KVStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		entries[k] = v
	}
	return entries
}

func (s *KVStore) PutEntries(entries map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range entries {
		s.entries[k] = v
	}
}

func (s *KVStore) Dirty() bool {
	return s.dirty.Load()
}

func (s *KVStore) flush() {
	s.dirty.Store(true)
	if s.persister == nil {
		return
	}
	if err := s.persister.Persist(); err != nil {
		s.logger.Errorf(providers.TypeStorage, "Write-through persist failed: %s", err)
		return
	}
	s.dirty.Store(false)
}
