// Package core is a minimal log-structured key-value store.
//
// Every write appends a record to a single log file and an in-memory
// KeyDir maps each key to the offset of its latest record. Opening a store
// replays the whole log to rebuild the KeyDir.
//
// Example:
//
//	s, err := core.Open("./akv.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	err = s.Insert([]byte("foo"), []byte("bar"))
//	val, err := s.Get([]byte("foo"))
//
// Deleting a key writes a tombstone (an empty value). A deleted key still
// exists and Get returns an empty value for it.
package core
