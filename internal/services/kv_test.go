package services

import (
	json "github.com/goccy/go-json"
)

// memKV is an in-memory KVStore for the service tests.
type memKV struct {
	data     map[string]string
	setCalls int
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) GetJSON(key string, out any) bool {
	raw, ok := m.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

func (m *memKV) SetJSON(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	m.data[key] = string(raw)
	m.setCalls++
}

func (m *memKV) Remove(key string) {
	delete(m.data, key)
}
