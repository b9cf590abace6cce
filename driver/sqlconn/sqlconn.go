// Package sqlconn implements the driver capability interfaces on top of a
// database/sql handle wrapped by sqlx. It is shared by the go-ora and godror
// adapters, which only differ in how they build their connect strings.
package sqlconn

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"

	"github.com/jmoiron/sqlx"

	"github.com/ignaciocaff/orahook/driver"
)

// Conn adapts a sqlx handle to the cursor/commit session model. Oracle
// clients run with autocommit off, while database/sql autocommits outside an
// explicit transaction; the adapter therefore keeps at most one transaction
// open and Commit closes it. The pool is pinned to a single physical
// connection so session state such as ALTER SESSION sticks.
type Conn struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

// New wraps db as a single-session connection.
func New(db *sqlx.DB) *Conn {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return &Conn{db: db}
}

func (c *Conn) ensureTx(ctx context.Context) (*sqlx.Tx, error) {
	if c.tx == nil {
		tx, err := c.db.BeginTxx(ctx, nil)
		if err != nil {
			return nil, err
		}
		c.tx = tx
	}
	return c.tx, nil
}

// Cursor returns a statement cursor on this session.
func (c *Conn) Cursor() (driver.Cursor, error) {
	if c.db == nil {
		return nil, sql.ErrConnDone
	}
	return &Cursor{conn: c}, nil
}

// Commit makes the pending transaction durable. With no pending work it is a
// no-op, matching a client-side commit on an idle session.
func (c *Conn) Commit() error {
	if c.tx == nil {
		return nil
	}
	tx := c.tx
	c.tx = nil
	return tx.Commit()
}

// SetCurrentSchema switches the session's active schema.
func (c *Conn) SetCurrentSchema(ctx context.Context, schema string) error {
	_, err := c.db.ExecContext(ctx, fmt.Sprintf("ALTER SESSION SET CURRENT_SCHEMA = %s", schema))
	return err
}

// Close rolls back pending work and releases the session. Safe to call more
// than once.
func (c *Conn) Close() error {
	if c.db == nil {
		return nil
	}
	if c.tx != nil {
		_ = c.tx.Rollback()
		c.tx = nil
	}
	db := c.db
	c.db = nil
	return db.Close()
}

// Cursor executes statements within the parent connection's transaction.
type Cursor struct {
	conn     *Conn
	prepared string
	vars     []driver.Var
	named    map[string]driver.Var
}

// Execute runs one statement with positional binds.
func (cu *Cursor) Execute(ctx context.Context, stmt string, args ...any) error {
	tx, err := cu.conn.ensureTx(ctx)
	if err != nil {
		return err
	}
	cu.vars = make([]driver.Var, len(args))
	for i, arg := range args {
		cu.vars[i] = outVar{arg}
	}
	cu.named = nil
	_, err = tx.ExecContext(ctx, stmt, args...)
	return err
}

// ExecuteNamed runs one statement with named binds.
func (cu *Cursor) ExecuteNamed(ctx context.Context, stmt string, args []driver.NamedValue) error {
	tx, err := cu.conn.ensureTx(ctx)
	if err != nil {
		return err
	}
	cu.vars = nil
	cu.named = make(map[string]driver.Var, len(args))
	bound := make([]any, len(args))
	for i, arg := range args {
		cu.named[arg.Name] = outVar{arg.Value}
		bound[i] = sql.Named(arg.Name, arg.Value)
	}
	_, err = tx.ExecContext(ctx, stmt, bound...)
	return err
}

// Prepare records a statement for ExecuteMany. The server-side parse happens
// when the statement first runs, inside the transaction that will commit it.
func (cu *Cursor) Prepare(_ context.Context, stmt string) error {
	cu.prepared = stmt
	return nil
}

// ExecuteMany prepares the statement on the current transaction and runs it
// once per row. An empty stmt reuses the last Prepare.
func (cu *Cursor) ExecuteMany(ctx context.Context, stmt string, rows [][]any) error {
	if stmt == "" {
		stmt = cu.prepared
	}
	if stmt == "" {
		return sql.ErrNoRows
	}
	tx, err := cu.conn.ensureTx(ctx)
	if err != nil {
		return err
	}
	prepared, err := tx.PreparexContext(ctx, stmt)
	if err != nil {
		return err
	}
	defer prepared.Close()
	for _, row := range rows {
		if _, err := prepared.ExecContext(ctx, row...); err != nil {
			return err
		}
	}
	return nil
}

// Query runs a statement and scans every row into a column-keyed map.
func (cu *Cursor) Query(ctx context.Context, stmt string, args ...any) ([]map[string]any, error) {
	tx, err := cu.conn.ensureTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.QueryxContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []map[string]any
	for rows.Next() {
		record := make(map[string]any)
		if err := rows.MapScan(record); err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

// BindVars returns the bind variables of the last positional Execute.
func (cu *Cursor) BindVars() []driver.Var { return cu.vars }

// NamedBindVars returns the bind variables of the last ExecuteNamed.
func (cu *Cursor) NamedBindVars() map[string]driver.Var { return cu.named }

// Close releases the cursor.
func (cu *Cursor) Close() error {
	cu.vars = nil
	cu.named = nil
	cu.prepared = ""
	return nil
}

// outVar resolves a bound argument after execution. Output parameters are
// passed as sql.Out with a pointer destination; resolving dereferences it.
// Plain input binds resolve to the bound value.
type outVar struct {
	bound any
}

func (v outVar) Resolve() any {
	switch out := v.bound.(type) {
	case sql.Out:
		return deref(out.Dest)
	case *sql.Out:
		return deref(out.Dest)
	default:
		return v.bound
	}
}

func deref(dest any) any {
	rv := reflect.ValueOf(dest)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Elem().Interface()
	}
	return dest
}
