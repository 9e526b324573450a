package storage

import (
	"os"

	json "github.com/goccy/go-json"

	"dirfav/internal/models"
	"dirfav/internal/providers"
	"dirfav/internal/storage/interfaces"
)

type FileManager struct {
	store      KVStoreInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, store KVStoreInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		store:      store,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	partition := models.PartitionV1{
		Version: 1,
		Entries: f.store.Snapshot(),
	}

	jsonData, err := json.Marshal(partition)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	// Try the versioned envelope first
	var partition models.PartitionV1
	if err := json.Unmarshal(decompressedData, &partition); err == nil && partition.Entries != nil {
		f.store.PutEntries(partition.Entries)
		return nil
	}

	// Pre-envelope files are a bare entries map
	f.logger.Warnf(providers.TypeStorage, "Inconsistent partition found, try to migrate from old data format")
	var entries map[string]string
	if err := json.Unmarshal(decompressedData, &entries); err != nil {
		f.logger.Warnf(providers.TypeStorage, "Migration failed")
		return err
	}
	f.store.PutEntries(entries)
	f.logger.Warnf(providers.TypeStorage, "Migration from bare entries format successful")

	return nil
}
