package loaders

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"dirfav/internal/models"
)

const (
	defaultSessionTTL  = 30 * time.Minute
	defaultMaxSessions = 128
)

// tabCollection caches one tab's data for the lifetime of a page session.
// The fetch runs at most once; a failed fetch stays unloaded so the next
// tab select retries.
type tabCollection[T any] struct {
	mu     sync.Mutex
	data   []T
	loaded bool
}

func (c *tabCollection[T]) get(fetch func() ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.data, nil
	}
	data, err := fetch()
	if err != nil {
		return nil, err
	}
	c.data = data
	c.loaded = true
	return data, nil
}

// PageSession is the per-navigation state of a user-detail page. The
// token makes staleness explicit: a new navigation to the same user
// invalidates the previous token instead of racing its in-flight loads.
type PageSession struct {
	Token     string
	UserID    int
	createdAt time.Time

	posts  tabCollection[models.Post]
	albums tabCollection[models.Album]
	todos  tabCollection[models.Todo]
}

type SessionRegistryInterface interface {
	Begin(userID int) *PageSession
	Lookup(userID int, token string) (*PageSession, error)
}

type SessionRegistry struct {
	mu          sync.Mutex
	sessions    map[int]*PageSession
	ttl         time.Duration
	maxSessions int
	now         func() time.Time
}

func NewSessionRegistry(ttl time.Duration, maxSessions int) SessionRegistryInterface {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	return &SessionRegistry{
		sessions:    make(map[int]*PageSession),
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

// Begin starts a fresh page session for the user, replacing any previous
// one. The returned token must accompany tab requests.
func (r *SessionRegistry) Begin(userID int) *PageSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictLocked()
	session := &PageSession{
		Token:     uuid.NewString(),
		UserID:    userID,
		createdAt: r.now(),
	}
	r.sessions[userID] = session
	return session
}

// Lookup resolves a session by user and token. A missing session or a
// token from a superseded navigation yields ErrStaleNavigation.
func (r *SessionRegistry) Lookup(userID int, token string) (*PageSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[userID]
	if !ok || session.Token != token {
		return nil, models.ErrStaleNavigation
	}
	if r.now().Sub(session.createdAt) > r.ttl {
		delete(r.sessions, userID)
		return nil, models.ErrStaleNavigation
	}
	return session, nil
}

// evictLocked drops expired sessions and, if the registry is still full,
// the oldest one.
func (r *SessionRegistry) evictLocked() {
	now := r.now()
	for id, s := range r.sessions {
		if now.Sub(s.createdAt) > r.ttl {
			delete(r.sessions, id)
		}
	}
	if len(r.sessions) < r.maxSessions {
		return
	}
	oldestID := 0
	var oldest time.Time
	first := true
	for id, s := range r.sessions {
		if first || s.createdAt.Before(oldest) {
			oldestID = id
			oldest = s.createdAt
			first = false
		}
	}
	if !first {
		delete(r.sessions, oldestID)
	}
}
