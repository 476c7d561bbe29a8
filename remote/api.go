// ABOUTME: Generic typed CRUD API over one mapped table
// ABOUTME: One factory call per entity replaces hand-written per-table clients
package remote

import (
	"context"
	"fmt"

	"github.com/venaworks/studiodesk/models"
)

// API provides typed CRUD for one entity collection. Instances are
// cheap: they hold the shared client and a mapping, nothing else.
type API[T models.Entity] struct {
	client  *Client
	mapping Mapping
}

// NewAPI builds the typed API for one mapped table.
func NewAPI[T models.Entity](client *Client, mapping Mapping) *API[T] {
	return &API[T]{client: client, mapping: mapping}
}

// Table returns the remote table this API reads and writes.
func (a *API[T]) Table() string {
	return a.mapping.Table
}

// GetAll fetches every row in the table in the mapping's order.
// Operation metrics count the caller-visible outcome, so decode
// failures register as errors just like fetch failures.
func (a *API[T]) GetAll(ctx context.Context) (out []T, err error) {
	defer func() { observe(a.mapping.Table, "get_all", err) }()

	rows, err := a.client.selectAll(ctx, a.mapping.Table, a.mapping.OrderBy, a.mapping.Descending)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", a.mapping.Table, err)
	}

	out = make([]T, 0, len(rows))
	for _, row := range rows {
		item, err := decodeEntity[T](a.mapping, row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	a.client.log.Debug("fetched collection", "table", a.mapping.Table, "count", len(out))
	return out, nil
}

// Create inserts a new record and returns it as stored, including the
// backend-assigned id and any column defaults.
func (a *API[T]) Create(ctx context.Context, item T) (created *T, err error) {
	defer func() { observe(a.mapping.Table, "create", err) }()

	row, err := encodeEntity(a.mapping, item)
	if err != nil {
		return nil, err
	}

	stored, err := a.client.insert(ctx, a.mapping.Table, row)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s row: %w", a.mapping.Table, err)
	}

	created, err = decodePtr[T](a.mapping, stored)
	if err != nil {
		return nil, err
	}
	a.client.log.Info("created record", "table", a.mapping.Table, "id", (*created).EntityID())
	return created, nil
}

// Update sends a partial patch for one record and returns the full
// updated record. Patch keys outside the mapping are dropped; a patch
// with no mapped keys is an error rather than a silent no-op.
func (a *API[T]) Update(ctx context.Context, id string, patch Patch) (updated *T, err error) {
	defer func() { observe(a.mapping.Table, "update", err) }()

	row := a.mapping.ToRow(patch)

	stored, err := a.client.updateByID(ctx, a.mapping.Table, id, row)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s %s: %w", a.mapping.Table, id, err)
	}

	updated, err = decodePtr[T](a.mapping, stored)
	if err != nil {
		return nil, err
	}
	a.client.log.Info("updated record", "table", a.mapping.Table, "id", id)
	return updated, nil
}

// Delete removes one record by id. Deleting an id that is already gone
// is not an error.
func (a *API[T]) Delete(ctx context.Context, id string) (err error) {
	defer func() { observe(a.mapping.Table, "delete", err) }()

	if err := a.client.deleteByID(ctx, a.mapping.Table, id); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", a.mapping.Table, id, err)
	}
	a.client.log.Info("deleted record", "table", a.mapping.Table, "id", id)
	return nil
}

// Upsert writes a record under a caller-chosen id, inserting or
// replacing. The seed importer uses this so re-imports stay idempotent.
func (a *API[T]) Upsert(ctx context.Context, id string, item T) (upserted *T, err error) {
	defer func() { observe(a.mapping.Table, "upsert", err) }()

	row, err := encodeEntity(a.mapping, item)
	if err != nil {
		return nil, err
	}
	row["id"] = id

	stored, err := a.client.upsert(ctx, a.mapping.Table, row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert %s %s: %w", a.mapping.Table, id, err)
	}
	return decodePtr[T](a.mapping, stored)
}

func decodePtr[T models.Entity](m Mapping, row map[string]any) (*T, error) {
	item, err := decodeEntity[T](m, row)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
