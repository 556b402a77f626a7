// Package avltree provides JSON serialization and deserialization for the
// AVL tree, implementing the container.JSONCodec interface.
package avltree

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/clonemasterUwU/bbst/container"
)

// Predefined errors for JSON operations.
var (
	ErrMarshalJSONFailure   = errors.New("failed to marshal tree to JSON")
	ErrUnmarshalJSONFailure = errors.New("failed to unmarshal JSON into tree")
)

// Ensure Tree implements container.JSONCodec at compile time.
var _ container.JSONCodec = (*Tree[string, int, int])(nil)

// MarshalJSON encodes the tree's key/value pairs as a JSON object. Metadata
// is never serialized: it's a pure function of the keys and values, and
// UnmarshalJSON recomputes it by re-inserting every entry.
func (t *Tree[K, V, M]) MarshalJSON() ([]byte, error) {
	elems := make(map[K]V, t.size)
	for it := t.Iterator(); it.Next(); {
		elems[it.Key()] = it.Value()
	}

	data, err := json.Marshal(elems)
	if err != nil {
		return nil, fmt.Errorf("avltree: %w: %w", ErrMarshalJSONFailure, err)
	}

	return data, nil
}

// UnmarshalJSON decodes a JSON object into the tree, clearing any existing
// entries first and recomputing metadata for every inserted key via Put.
func (t *Tree[K, V, M]) UnmarshalJSON(data []byte) error {
	var elems map[K]V
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("avltree: %w: %w", ErrUnmarshalJSONFailure, err)
	}

	t.Clear()

	for k, v := range elems {
		t.Put(k, v)
	}

	return nil
}
