package core

import (
	"maps"
	"slices"
)

// KeyDir is the in-memory index mapping each key to the byte offset of the
// record that last wrote it.
//
// The KeyDir is never persisted. It is rebuilt on open by replaying the log
// from the start, and every later insert (tombstones included) overwrites
// the key's offset. Nothing is ever removed from it.
type KeyDir struct {
	entries map[string]int64
}

func newKeyDir() *KeyDir {
	return &KeyDir{entries: make(map[string]int64)}
}

// Set inserts or overwrites the offset for key.
func (kd *KeyDir) Set(key []byte, offset int64) {
	kd.entries[string(key)] = offset
}

func (kd *KeyDir) Get(key []byte) (int64, bool) {
	offset, ok := kd.entries[string(key)]
	return offset, ok
}

func (kd *KeyDir) IsEmpty() bool {
	return len(kd.entries) == 0
}

func (kd *KeyDir) Len() int {
	return len(kd.entries)
}

// Keys returns every indexed key in sorted order.
func (kd *KeyDir) Keys() []string {
	return slices.Sorted(maps.Keys(kd.entries))
}

// Snapshot returns a copy of the key to offset mapping.
func (kd *KeyDir) Snapshot() map[string]int64 {
	return maps.Clone(kd.entries)
}
