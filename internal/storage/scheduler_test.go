package storage

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirfav/internal/models"
	"dirfav/internal/structures"
	"dirfav/internal/testutil"
)

func schedulerConfig(filePath string) *structures.Config {
	return &structures.Config{
		Persistence: structures.Persistence{
			FilePath:      filePath,
			FlushInterval: 1,
		},
	}
}

func newTestScheduler(path string) (*Scheduler, *KVStore, *testutil.MockMetrics) {
	store := newTestStore()
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{}
	fm := NewFileManager(&testutil.MockCompressor{}, store, logger)
	s := NewScheduler(schedulerConfig(path), logger, store, fm, metrics).(*Scheduler)
	return s, store, metrics
}

func TestScheduler_Restore_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "restore.bin")

	partition := models.PartitionV1{
		Version: 1,
		Entries: map[string]string{models.KeyTheme: `"dark"`},
	}
	data, _ := json.Marshal(partition)
	require.NoError(t, os.WriteFile(path, data, 0644))

	s, store, _ := newTestScheduler(path)
	require.NoError(t, s.Restore())

	val, ok := store.Get(models.KeyTheme)
	require.True(t, ok)
	assert.Equal(t, `"dark"`, val)
}

func TestScheduler_Restore_FileNotExist(t *testing.T) {
	s, store, _ := newTestScheduler("/nonexistent/partition.bin")

	assert.NoError(t, s.Restore())
	assert.Empty(t, store.Keys())
}

func TestScheduler_Restore_CorruptedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corrupt.bin")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	s, _, _ := newTestScheduler(path)
	assert.Error(t, s.Restore())
}

func TestScheduler_Persist_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "persist.bin")

	s, store, metrics := newTestScheduler(path)
	store.Set("k", "v")

	require.NoError(t, s.Persist())

	_, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, 1, metrics.PersistenceCalls)
}

func TestScheduler_Persist_BadPath(t *testing.T) {
	s, _, _ := newTestScheduler("/nonexistent/dir/partition.bin")
	assert.Error(t, s.Persist())
}

func TestScheduler_Init_WiresWriteThrough(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "through.bin")

	s, store, _ := newTestScheduler(path)
	s.Init()
	defer s.Stop()

	store.Set(models.KeyTheme, `"dark"`)

	// The mutation persisted synchronously through the scheduler
	assert.False(t, store.Dirty())
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestScheduler_PersistedFileRoundtrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roundtrip.bin")

	s, store, _ := newTestScheduler(path)
	store.Set(models.KeyFavorites, `{"photos":[],"posts":[]}`)
	require.NoError(t, s.Persist())

	s2, store2, _ := newTestScheduler(path)
	require.NoError(t, s2.Restore())

	assert.Equal(t, store.Snapshot(), store2.Snapshot())
}

func TestScheduler_StopWithoutInit(t *testing.T) {
	s, _, _ := newTestScheduler("/tmp/never-written.bin")
	s.Stop() // must not panic
}
