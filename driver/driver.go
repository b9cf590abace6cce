// Package driver defines the capability surface an Oracle client must provide
// to the hook: opening a session, executing statements through a cursor,
// batch binds, and resolving output bind variables. Concrete adapters live in
// the subpackages; test doubles implement the same interfaces.
package driver

import "context"

// Connector opens a physical Oracle session from resolved connect options.
type Connector interface {
	Connect(ctx context.Context, opts ConnectOptions) (Conn, error)
}

// Conn is a live Oracle session. It is owned by exactly one hook instance and
// is not safe for concurrent use.
type Conn interface {
	// Cursor returns a statement cursor on this session.
	Cursor() (Cursor, error)
	// Commit makes the work since the previous commit durable.
	Commit() error
	// SetCurrentSchema changes the session's active schema.
	SetCurrentSchema(ctx context.Context, schema string) error
	// Close releases the session. Safe to call more than once.
	Close() error
}

// Cursor executes statements on its parent session.
type Cursor interface {
	// Execute runs one statement with optional positional bind arguments.
	Execute(ctx context.Context, stmt string, args ...any) error
	// ExecuteNamed runs one statement with named bind arguments.
	ExecuteNamed(ctx context.Context, stmt string, args []NamedValue) error
	// Prepare parses a statement for later ExecuteMany calls.
	Prepare(ctx context.Context, stmt string) error
	// ExecuteMany runs a statement once per row with positional binds.
	// An empty stmt reuses the most recently prepared statement.
	ExecuteMany(ctx context.Context, stmt string, rows [][]any) error
	// Query runs a statement returning rows as column-name keyed maps.
	Query(ctx context.Context, stmt string, args ...any) ([]map[string]any, error)
	// BindVars returns the bind variables of the last positional Execute.
	BindVars() []Var
	// NamedBindVars returns the bind variables of the last ExecuteNamed.
	NamedBindVars() map[string]Var
	// Close releases the cursor.
	Close() error
}

// Var is a bind variable whose final value can be read back after execution.
// Output parameters resolve to the value the statement wrote; plain input
// binds resolve to the bound value itself.
type Var interface {
	Resolve() any
}

// NamedValue is one named bind argument.
type NamedValue struct {
	Name  string
	Value any
}

// Params is the shape of a statement's bind parameters: nil for none,
// Positional for an ordered list, Named for name/value pairs in caller order.
type Params interface {
	isParams()
}

// Positional binds by position, first value to :1.
type Positional []any

// Named binds by name, preserving the caller's ordering.
type Named []NamedValue

func (Positional) isParams() {}
func (Named) isParams()      {}
