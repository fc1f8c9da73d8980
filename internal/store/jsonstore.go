// Package store implements the flat-file Record Store: each entity
// collection is one JSON file holding an array of flat records.  The
// loader is deliberately forgiving — a missing file, a corrupt file or
// a file with the wrong top-level shape all yield an empty collection
// with a logged warning, never an error.  Writers rewrite the whole
// collection on every save.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Load reads a collection file and returns its records still encoded,
// one raw message per record.  Callers decode each record themselves
// so that a single malformed record can be skipped without losing the
// rest of the collection.  A missing file is normal (first run) and
// returns nil silently; any other read or shape problem is logged and
// also yields an empty collection.
func Load(path string) []json.RawMessage {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("store: could not read %s: %v", path, err)
		}
		return nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("store: %s is not a record list: %v; treating collection as empty", path, err)
		return nil
	}
	return records
}

// Save writes a collection to its file, creating the parent directory
// when needed.  The records argument is a slice of entities; the file
// is written indented so it stays hand-editable.  Unknown fields that
// were present in previously loaded records are not carried over.
func Save(path string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
