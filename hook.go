// Package orahook executes SQL statements, batched inserts and stored
// procedure calls against an Oracle database on behalf of an orchestration
// system. A Hook owns one session, acquired lazily on first use; the caller
// owns when Close runs. A Hook is not safe for concurrent use.
package orahook

import (
	"context"

	"go.uber.org/zap"

	"github.com/ignaciocaff/orahook/driver"
	"github.com/ignaciocaff/orahook/driver/goora"
	"github.com/ignaciocaff/orahook/internal/core"
)

// Hook runs statements on a single Oracle session described by a
// ConnectionRecord.
type Hook struct {
	rec       ConnectionRecord
	connector driver.Connector
	log       *zap.Logger
	session   *core.Session
}

// Option customizes a Hook.
type Option func(*Hook)

// WithConnector replaces the default go-ora connector, e.g. with the godror
// one or a test double.
func WithConnector(c driver.Connector) Option {
	return func(h *Hook) { h.connector = c }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(h *Hook) { h.log = log }
}

// New builds a hook for the given connection record. No connection is opened
// until the first operation runs.
func New(rec ConnectionRecord, opts ...Option) *Hook {
	h := &Hook{
		rec:       rec,
		connector: goora.Connector{},
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Hook) conn(ctx context.Context) (*core.Session, error) {
	if h.session == nil {
		session, err := core.Connect(ctx, h.connector, h.rec, h.log)
		if err != nil {
			return nil, err
		}
		h.session = session
	}
	return h.session, nil
}

// Run executes one statement verbatim with optional bind parameters and
// commits.
func (h *Hook) Run(ctx context.Context, stmt string, params driver.Params) error {
	session, err := h.conn(ctx)
	if err != nil {
		return err
	}
	return session.Run(ctx, stmt, params)
}

// InsertRows loads rows into table with a direct-path INSERT built as literal
// SQL. targetFields names the columns; leave it empty to insert by position.
func (h *Hook) InsertRows(ctx context.Context, table string, rows [][]any, targetFields []string) error {
	session, err := h.conn(ctx)
	if err != nil {
		return err
	}
	return session.InsertRows(ctx, table, rows, targetFields)
}

// BulkInsertRows loads rows through the driver's batch bind path, committing
// every commitEvery rows, or once at the end when commitEvery <= 0. It fails
// with ErrEmptyRows before touching the database when rows is empty.
func (h *Hook) BulkInsertRows(ctx context.Context, table string, rows [][]any, targetFields []string, commitEvery int) error {
	if len(rows) == 0 {
		return ErrEmptyRows
	}
	session, err := h.conn(ctx)
	if err != nil {
		return err
	}
	return session.BulkInsertRows(ctx, table, rows, targetFields, commitEvery)
}

// CallProc invokes a stored procedure and returns the resolved bind values
// in the same shape as params.
func (h *Hook) CallProc(ctx context.Context, name string, autocommit bool, params driver.Params) (driver.Params, error) {
	session, err := h.conn(ctx)
	if err != nil {
		return nil, err
	}
	return session.CallProc(ctx, name, autocommit, params)
}

// GetRecords runs a query and returns every row as a column-keyed map.
func (h *Hook) GetRecords(ctx context.Context, stmt string, params driver.Positional) ([]map[string]any, error) {
	session, err := h.conn(ctx)
	if err != nil {
		return nil, err
	}
	return session.GetRecords(ctx, stmt, params)
}

// GetFirst runs a query and returns the first row, or nil for an empty
// result set.
func (h *Hook) GetFirst(ctx context.Context, stmt string, params driver.Positional) (map[string]any, error) {
	session, err := h.conn(ctx)
	if err != nil {
		return nil, err
	}
	return session.GetFirst(ctx, stmt, params)
}

// TestConnection opens the session if needed and probes it with a dual
// query.
func (h *Hook) TestConnection(ctx context.Context) (bool, string) {
	session, err := h.conn(ctx)
	if err != nil {
		return false, err.Error()
	}
	return session.TestConnection(ctx)
}

// Close releases the session. Safe to call more than once or before any
// connection was opened.
func (h *Hook) Close() error {
	if h.session == nil {
		return nil
	}
	session := h.session
	h.session = nil
	return session.Close()
}
