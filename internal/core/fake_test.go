package core

import (
	"context"

	"go.uber.org/zap"

	"github.com/ignaciocaff/orahook/driver"
)

// Test doubles for the driver capability interfaces. The cursor records
// every call so tests can assert on the exact generated SQL and bind
// arguments.

type fakeVar struct{ value any }

func (v fakeVar) Resolve() any { return v.value }

type fakeConnector struct {
	conn *fakeConn
	err  error
	opts []driver.ConnectOptions
}

func newFakeConnector() *fakeConnector {
	return &fakeConnector{conn: newFakeConn()}
}

func (c *fakeConnector) Connect(_ context.Context, opts driver.ConnectOptions) (driver.Conn, error) {
	c.opts = append(c.opts, opts)
	if c.err != nil {
		return nil, c.err
	}
	return c.conn, nil
}

type fakeConn struct {
	cursor  *fakeCursor
	commits int
	schema  string
	closed  int
}

func newFakeConn() *fakeConn {
	return &fakeConn{cursor: &fakeCursor{}}
}

func (c *fakeConn) Cursor() (driver.Cursor, error) { return c.cursor, nil }

func (c *fakeConn) Commit() error {
	c.commits++
	return nil
}

func (c *fakeConn) SetCurrentSchema(_ context.Context, schema string) error {
	c.schema = schema
	return nil
}

func (c *fakeConn) Close() error {
	c.closed++
	return nil
}

type executedCall struct {
	stmt  string
	args  []any
	named []driver.NamedValue
}

type manyCall struct {
	stmt string
	rows [][]any
}

type fakeCursor struct {
	executed []executedCall
	prepared []string
	many     []manyCall
	queries  []string

	execErr   error
	queryErr  error
	queryRows []map[string]any

	// vars / named override the echoed bind variables, standing in for
	// output parameters the statement wrote.
	vars      []driver.Var
	named     map[string]driver.Var
	lastArgs  []any
	lastNamed []driver.NamedValue
	closed    int
}

func (c *fakeCursor) Execute(_ context.Context, stmt string, args ...any) error {
	c.executed = append(c.executed, executedCall{stmt: stmt, args: args})
	c.lastArgs = args
	c.lastNamed = nil
	return c.execErr
}

func (c *fakeCursor) ExecuteNamed(_ context.Context, stmt string, args []driver.NamedValue) error {
	c.executed = append(c.executed, executedCall{stmt: stmt, named: args})
	c.lastArgs = nil
	c.lastNamed = args
	return c.execErr
}

func (c *fakeCursor) Prepare(_ context.Context, stmt string) error {
	c.prepared = append(c.prepared, stmt)
	return nil
}

func (c *fakeCursor) ExecuteMany(_ context.Context, stmt string, rows [][]any) error {
	c.many = append(c.many, manyCall{stmt: stmt, rows: rows})
	return c.execErr
}

func (c *fakeCursor) Query(_ context.Context, stmt string, _ ...any) ([]map[string]any, error) {
	c.queries = append(c.queries, stmt)
	if c.queryErr != nil {
		return nil, c.queryErr
	}
	return c.queryRows, nil
}

func (c *fakeCursor) BindVars() []driver.Var {
	if c.vars != nil {
		return c.vars
	}
	vars := make([]driver.Var, len(c.lastArgs))
	for i, arg := range c.lastArgs {
		vars[i] = fakeVar{arg}
	}
	return vars
}

func (c *fakeCursor) NamedBindVars() map[string]driver.Var {
	if c.named != nil {
		return c.named
	}
	named := make(map[string]driver.Var, len(c.lastNamed))
	for _, nv := range c.lastNamed {
		named[nv.Name] = fakeVar{nv.Value}
	}
	return named
}

func (c *fakeCursor) Close() error {
	c.closed++
	return nil
}

func newTestSession(conn *fakeConn) *Session {
	return &Session{conn: conn, cur: conn.cursor, log: zap.NewNop()}
}
