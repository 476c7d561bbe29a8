// ABOUTME: Declarative bidirectional field mappings between entity and row shape
// ABOUTME: One generic translation consumes per-entity tables instead of hand-written converters
package remote

import "fmt"

// FieldKind drives the read-side default for a column that comes back
// NULL: lists become empty slices, maps empty objects, scalars stay
// absent.
type FieldKind int

const (
	Scalar FieldKind = iota
	List
	Map
)

// Field pairs one application field name with its remote column.
type Field struct {
	Name   string
	Column string
	Kind   FieldKind
}

// Mapping describes one remote table: its name, the sort key getAll
// uses, and the full field translation table. Singleton tables carry no
// application-visible id.
type Mapping struct {
	Table      string
	OrderBy    string
	Descending bool
	Singleton  bool
	Fields     []Field
}

// DecodeError marks a row that does not match the declared shape of its
// table. Distinct from network/backend failures so callers can tell
// schema drift apart from an outage.
type DecodeError struct {
	Table string
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode %s: field %q: %v", e.Table, e.Field, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Table, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FromRow translates a remote row into application field naming.
// Unknown columns are dropped silently; a declared column missing from
// the row entirely is a DecodeError (the schema no longer matches the
// mapping). NULL lists and maps default to empty containers.
func (m Mapping) FromRow(row map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m.Fields)+1)

	if !m.Singleton {
		id, ok := row["id"]
		if !ok {
			return nil, &DecodeError{Table: m.Table, Field: "id", Err: errMissingColumn}
		}
		out["id"] = id
	}

	for _, f := range m.Fields {
		v, ok := row[f.Column]
		if !ok {
			return nil, &DecodeError{Table: m.Table, Field: f.Name, Err: errMissingColumn}
		}
		if v == nil {
			switch f.Kind {
			case List:
				out[f.Name] = []any{}
			case Map:
				out[f.Name] = map[string]any{}
			}
			continue
		}
		out[f.Name] = v
	}

	return out, nil
}

// ToRow translates a partial entity into column naming. Only keys
// present in the patch are emitted; there is no defaulting on write,
// and the id is never part of the payload. Keys outside the mapping
// are dropped.
func (m Mapping) ToRow(patch map[string]any) map[string]any {
	row := make(map[string]any, len(patch))
	for _, f := range m.Fields {
		if v, ok := patch[f.Name]; ok {
			row[f.Column] = v
		}
	}
	return row
}

var errMissingColumn = fmt.Errorf("column missing from row")
