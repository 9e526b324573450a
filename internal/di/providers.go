package di

import (
	"dirfav/internal/loaders"
	"dirfav/internal/services"
	"dirfav/internal/storage"
	"dirfav/internal/structures"
)

// ProvideServiceKV narrows the storage adapter to the slice the state
// services consume.
func ProvideServiceKV(store storage.KVStoreInterface) services.KVStore {
	return store
}

func ProvideSessionRegistry(conf *structures.Config) loaders.SessionRegistryInterface {
	return loaders.NewSessionRegistry(conf.Directory.SessionTTL, conf.Directory.MaxSessions)
}
