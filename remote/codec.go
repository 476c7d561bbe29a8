// ABOUTME: JSON codec between typed entities and translated row maps
// ABOUTME: Entities round-trip through their application field names
package remote

import (
	"encoding/json"

	"github.com/venaworks/studiodesk/models"
)

// Patch is a partial entity keyed by application field names. Only the
// keys present are sent to the remote store.
type Patch map[string]any

// PatchOf turns a full entity (or any struct) into a Patch covering
// every field. Used where callers save a whole record, e.g. the profile
// form and the seed importer.
func PatchOf(v any) (Patch, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var patch Patch
	if err := json.Unmarshal(buf, &patch); err != nil {
		return nil, err
	}
	delete(patch, "id")
	return patch, nil
}

func decodeEntity[T any](m Mapping, row map[string]any) (T, error) {
	var out T

	fields, err := m.FromRow(row)
	if err != nil {
		return out, err
	}
	buf, err := json.Marshal(fields)
	if err != nil {
		return out, &DecodeError{Table: m.Table, Err: err}
	}
	if err := json.Unmarshal(buf, &out); err != nil {
		return out, &DecodeError{Table: m.Table, Err: err}
	}
	return out, nil
}

func encodeEntity[T models.Entity](m Mapping, item T) (map[string]any, error) {
	patch, err := PatchOf(item)
	if err != nil {
		return nil, &DecodeError{Table: m.Table, Err: err}
	}
	return m.ToRow(patch), nil
}
