package testutil

import (
	"context"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"dirfav/internal/models"
	"dirfav/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockKV implements services.KVStore over a plain map.
type MockKV struct {
	mu       sync.Mutex
	Data     map[string]string
	SetCalls int
}

func NewMockKV() *MockKV {
	return &MockKV{Data: make(map[string]string)}
}

func (m *MockKV) GetJSON(key string, out any) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.Data[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false
	}
	return true
}

func (m *MockKV) SetJSON(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	m.Data[key] = string(raw)
	m.SetCalls++
}

func (m *MockKV) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockGateway implements gateway.GatewayInterface with injectable behavior.
// Calls counts invocations per method so tests can assert fetch laziness.
type MockGateway struct {
	mu    sync.Mutex
	Calls map[string]int

	UsersFn        func(ctx context.Context) ([]models.User, error)
	UserFn         func(ctx context.Context, id int) (models.User, error)
	PostsFn        func(ctx context.Context) ([]models.Post, error)
	PostFn         func(ctx context.Context, id int) (models.Post, error)
	UserPostsFn    func(ctx context.Context, userID int) ([]models.Post, error)
	PostCommentsFn func(ctx context.Context, postID int) ([]models.Comment, error)
	AlbumsFn       func(ctx context.Context) ([]models.Album, error)
	AlbumFn        func(ctx context.Context, id int) (models.Album, error)
	UserAlbumsFn   func(ctx context.Context, userID int) ([]models.Album, error)
	AlbumPhotosFn  func(ctx context.Context, albumID int) ([]models.Photo, error)
	TodosFn        func(ctx context.Context) ([]models.Todo, error)
	UserTodosFn    func(ctx context.Context, userID int) ([]models.Todo, error)
}

func NewMockGateway() *MockGateway {
	return &MockGateway{Calls: make(map[string]int)}
}

func (m *MockGateway) count(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls[method]++
}

func (m *MockGateway) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[method]
}

func (m *MockGateway) Users(ctx context.Context) ([]models.User, error) {
	m.count("Users")
	if m.UsersFn != nil {
		return m.UsersFn(ctx)
	}
	return nil, nil
}

func (m *MockGateway) User(ctx context.Context, id int) (models.User, error) {
	m.count("User")
	if m.UserFn != nil {
		return m.UserFn(ctx, id)
	}
	return models.User{ID: id}, nil
}

func (m *MockGateway) Posts(ctx context.Context) ([]models.Post, error) {
	m.count("Posts")
	if m.PostsFn != nil {
		return m.PostsFn(ctx)
	}
	return nil, nil
}

func (m *MockGateway) Post(ctx context.Context, id int) (models.Post, error) {
	m.count("Post")
	if m.PostFn != nil {
		return m.PostFn(ctx, id)
	}
	return models.Post{ID: id}, nil
}

func (m *MockGateway) UserPosts(ctx context.Context, userID int) ([]models.Post, error) {
	m.count("UserPosts")
	if m.UserPostsFn != nil {
		return m.UserPostsFn(ctx, userID)
	}
	return nil, nil
}

func (m *MockGateway) PostComments(ctx context.Context, postID int) ([]models.Comment, error) {
	m.count("PostComments")
	if m.PostCommentsFn != nil {
		return m.PostCommentsFn(ctx, postID)
	}
	return nil, nil
}

func (m *MockGateway) Albums(ctx context.Context) ([]models.Album, error) {
	m.count("Albums")
	if m.AlbumsFn != nil {
		return m.AlbumsFn(ctx)
	}
	return nil, nil
}

func (m *MockGateway) Album(ctx context.Context, id int) (models.Album, error) {
	m.count("Album")
	if m.AlbumFn != nil {
		return m.AlbumFn(ctx, id)
	}
	return models.Album{ID: id}, nil
}

func (m *MockGateway) UserAlbums(ctx context.Context, userID int) ([]models.Album, error) {
	m.count("UserAlbums")
	if m.UserAlbumsFn != nil {
		return m.UserAlbumsFn(ctx, userID)
	}
	return nil, nil
}

func (m *MockGateway) AlbumPhotos(ctx context.Context, albumID int) ([]models.Photo, error) {
	m.count("AlbumPhotos")
	if m.AlbumPhotosFn != nil {
		return m.AlbumPhotosFn(ctx, albumID)
	}
	return nil, nil
}

func (m *MockGateway) Todos(ctx context.Context) ([]models.Todo, error) {
	m.count("Todos")
	if m.TodosFn != nil {
		return m.TodosFn(ctx)
	}
	return nil, nil
}

func (m *MockGateway) UserTodos(ctx context.Context, userID int) ([]models.Todo, error) {
	m.count("UserTodos")
	if m.UserTodosFn != nil {
		return m.UserTodosFn(ctx, userID)
	}
	return nil, nil
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu               sync.Mutex
	Requests         int
	CacheHits        int
	CacheMisses      int
	GatewayRequests  int
	PersistenceCalls int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) IncGatewayRequests(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GatewayRequests++
}

func (m *MockMetrics) ObserveGatewayDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceCalls++
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}
