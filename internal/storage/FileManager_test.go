package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirfav/internal/models"
	"dirfav/internal/testutil"
)

func newTestFileManager(compressor *testutil.MockCompressor) (*FileManager, *KVStore) {
	store := newTestStore()
	logger := &testutil.MockLogger{}
	fm := NewFileManager(compressor, store, logger)
	return fm, store
}

func TestFileManager_SaveToFile_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partition.bin")

	fm, store := newTestFileManager(&testutil.MockCompressor{})
	store.Set(models.KeyTheme, `"dark"`)

	require.NoError(t, fm.SaveToFile(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)

	// Temp file should not exist
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileManager_SaveToFile_WritesEnvelope(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partition.bin")

	fm, store := newTestFileManager(&testutil.MockCompressor{}) // identity compressor
	store.Set("k", "v")

	require.NoError(t, fm.SaveToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var partition models.PartitionV1
	require.NoError(t, json.Unmarshal(data, &partition))
	assert.Equal(t, 1, partition.Version)
	assert.Equal(t, map[string]string{"k": "v"}, partition.Entries)
}

func TestFileManager_SaveToFile_CompressError(t *testing.T) {
	comp := &testutil.MockCompressor{
		CompressFn: func([]byte) ([]byte, error) {
			return nil, errors.New("compress failed")
		},
	}
	fm, _ := newTestFileManager(comp)

	err := fm.SaveToFile(filepath.Join(t.TempDir(), "partition.bin"))
	assert.Error(t, err)
}

func TestFileManager_LoadFromFile_FileNotExist(t *testing.T) {
	fm, store := newTestFileManager(&testutil.MockCompressor{})

	err := fm.LoadFromFile("/nonexistent/path/partition.bin")
	assert.NoError(t, err) // not an error, just no data
	assert.Empty(t, store.Keys())
}

func TestFileManager_LoadFromFile_Envelope(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partition.bin")

	partition := models.PartitionV1{
		Version: 1,
		Entries: map[string]string{
			models.KeyTheme:       `"dark"`,
			models.KeyRecentViews: `[]`,
		},
	}
	data, _ := json.Marshal(partition)
	require.NoError(t, os.WriteFile(path, data, 0644))

	fm, store := newTestFileManager(&testutil.MockCompressor{})
	require.NoError(t, fm.LoadFromFile(path))

	val, ok := store.Get(models.KeyTheme)
	require.True(t, ok)
	assert.Equal(t, `"dark"`, val)
}

func TestFileManager_LoadFromFile_BareMapMigration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partition.bin")

	// Pre-envelope format: a bare entries map
	old := map[string]string{models.KeyTheme: `"auto"`}
	data, _ := json.Marshal(old)
	require.NoError(t, os.WriteFile(path, data, 0644))

	fm, store := newTestFileManager(&testutil.MockCompressor{})
	require.NoError(t, fm.LoadFromFile(path))

	val, ok := store.Get(models.KeyTheme)
	require.True(t, ok)
	assert.Equal(t, `"auto"`, val)
}

func TestFileManager_LoadFromFile_GarbageFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partition.bin")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0644))

	fm, store := newTestFileManager(&testutil.MockCompressor{})
	err := fm.LoadFromFile(path)
	assert.Error(t, err)
	assert.Empty(t, store.Keys())
}

func TestFileManager_LoadFromFile_DecompressError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partition.bin")
	require.NoError(t, os.WriteFile(path, []byte("whatever"), 0644))

	comp := &testutil.MockCompressor{
		DecompressFn: func([]byte) ([]byte, error) {
			return nil, errors.New("bad frame")
		},
	}
	fm, _ := newTestFileManager(comp)
	assert.Error(t, fm.LoadFromFile(path))
}

func TestFileManager_RoundtripWithRealCompressor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partition.bin")

	comp, err := NewZstdCompressor()
	require.NoError(t, err)

	logger := &testutil.MockLogger{}
	src := newTestStore()
	src.Set(models.KeyFavorites, `{"photos":[],"posts":[]}`)
	src.Set(models.KeyTheme, `"dark"`)

	require.NoError(t, NewFileManager(comp, src, logger).SaveToFile(path))

	dst := newTestStore()
	require.NoError(t, NewFileManager(comp, dst, logger).LoadFromFile(path))

	assert.Equal(t, src.Snapshot(), dst.Snapshot())
}
