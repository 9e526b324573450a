package services

// KVStore is the slice of the storage adapter the state services need.
// Satisfied by storage.KVStore.
type KVStore interface {
	GetJSON(key string, out any) bool
	SetJSON(key string, value any)
	Remove(key string)
}
