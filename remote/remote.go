// ABOUTME: Connection management and table gateway for the hosted Postgres store
// ABOUTME: Exposes row-level select/insert/update/delete/upsert keyed by id
package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when an update targets an id that no longer
// exists remotely.
var ErrNotFound = errors.New("remote: row not found")

// ErrEmptyPatch is returned when a patch contains no mapped fields, so
// there is nothing to send.
var ErrEmptyPatch = errors.New("remote: patch contains no mapped fields")

// Client wraps the connection pool to the hosted store. All table and
// column names fed into it come from the static mapping tables, never
// from callers.
type Client struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// Open connects to the hosted store and verifies the connection.
func Open(ctx context.Context, databaseURL string, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping remote store: %w", err)
	}

	return &Client{pool: pool, log: logger}, nil
}

// Close releases the connection pool.
func (c *Client) Close() {
	c.pool.Close()
}

// Pool exposes the underlying pool for schema bootstrap and tests.
func (c *Client) Pool() *pgxpool.Pool {
	return c.pool
}

func (c *Client) selectAll(ctx context.Context, table, orderBy string, desc bool) ([]map[string]any, error) {
	rows, err := c.pool.Query(ctx, fmt.Sprintf("SELECT * FROM %s ORDER BY %s %s", table, orderBy, direction(desc)))
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}

func (c *Client) selectEq(ctx context.Context, table, column string, value any, orderBy string, desc bool) ([]map[string]any, error) {
	rows, err := c.pool.Query(ctx,
		fmt.Sprintf("SELECT * FROM %s WHERE %s = $1 ORDER BY %s %s", table, column, orderBy, direction(desc)), value)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}

func (c *Client) selectLimit(ctx context.Context, table string, limit int) ([]map[string]any, error) {
	rows, err := c.pool.Query(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT %d", table, limit))
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}

// insert writes one row and returns it as stored. The id is assigned
// here when the caller did not provide one.
func (c *Client) insert(ctx context.Context, table string, row map[string]any) (map[string]any, error) {
	if _, ok := row["id"]; !ok {
		row["id"] = uuid.NewString()
	}

	cols := sortedColumns(row)
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = row[col]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	return c.queryOne(ctx, query, args)
}

func (c *Client) updateByID(ctx context.Context, table, id string, row map[string]any) (map[string]any, error) {
	if len(row) == 0 {
		return nil, ErrEmptyPatch
	}

	cols := sortedColumns(row)
	assignments := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
		args = append(args, row[col])
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING *",
		table, strings.Join(assignments, ", "), len(cols)+1)
	updated, err := c.queryOne(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (c *Client) deleteByID(ctx context.Context, table, id string) error {
	_, err := c.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	return err
}

// upsert inserts or replaces a row by id. Used by the seed importer
// only; normal writes go through insert/updateByID.
func (c *Client) upsert(ctx context.Context, table string, row map[string]any) (map[string]any, error) {
	if _, ok := row["id"]; !ok {
		return nil, errors.New("remote: upsert requires an id")
	}

	cols := sortedColumns(row)
	placeholders := make([]string, len(cols))
	assignments := make([]string, 0, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = row[col]
		if col != "id" {
			assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (id) DO UPDATE SET %s RETURNING *",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "), strings.Join(assignments, ", "))
	return c.queryOne(ctx, query, args)
}

// selectID fetches the id of the single row in a singleton table.
// Returns "" without error when the table is empty.
func (c *Client) selectID(ctx context.Context, table string) (string, error) {
	var id string
	err := c.pool.QueryRow(ctx, fmt.Sprintf("SELECT id FROM %s LIMIT 1", table)).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (c *Client) queryOne(ctx context.Context, query string, args []any) (map[string]any, error) {
	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	result, err := collectRows(rows)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, nil
	}
	return result[0], nil
}

func collectRows(rows pgx.Rows) ([]map[string]any, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var out []map[string]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(map[string]any, len(fields))
		for i, fd := range fields {
			row[fd.Name] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// sortedColumns keeps generated SQL deterministic for a given row.
func sortedColumns(row map[string]any) []string {
	cols := make([]string, 0, len(row))
	for col := range row {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

func direction(desc bool) string {
	if desc {
		return "DESC"
	}
	return "ASC"
}
