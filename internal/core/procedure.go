package core

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ignaciocaff/orahook/driver"
)

// CallProc invokes a stored procedure inside an anonymous PL/SQL block and
// returns the resolved bind values in the same shape as params: nil in nil
// out, Positional in Positional out, Named in Named out preserving order.
// When autocommit is set the session commits after the call.
func (s *Session) CallProc(ctx context.Context, name string, autocommit bool, params driver.Params) (driver.Params, error) {
	stmt := buildCallStatement(name, params)
	s.log.Debug("calling procedure", zap.String("sql", stmt))

	var result driver.Params
	switch p := params.(type) {
	case nil:
		if err := s.cur.Execute(ctx, stmt); err != nil {
			return nil, err
		}
	case driver.Positional:
		if err := s.cur.Execute(ctx, stmt, p...); err != nil {
			return nil, err
		}
		result = resolvePositional(p, s.cur.BindVars())
	case driver.Named:
		if err := s.cur.ExecuteNamed(ctx, stmt, p); err != nil {
			return nil, err
		}
		result = resolveNamed(p, s.cur.NamedBindVars())
	}
	if autocommit {
		if err := s.conn.Commit(); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func buildCallStatement(name string, params driver.Params) string {
	var args []string
	switch p := params.(type) {
	case driver.Positional:
		for i := range p {
			args = append(args, fmt.Sprintf(":%d", i+1))
		}
	case driver.Named:
		for _, nv := range p {
			args = append(args, ":"+nv.Name)
		}
	}
	return fmt.Sprintf("BEGIN %s(%s); END;", name, strings.Join(args, ","))
}

func resolvePositional(in driver.Positional, vars []driver.Var) driver.Positional {
	out := make(driver.Positional, len(in))
	for i, v := range in {
		if i < len(vars) && vars[i] != nil {
			out[i] = vars[i].Resolve()
		} else {
			out[i] = v
		}
	}
	return out
}

func resolveNamed(in driver.Named, vars map[string]driver.Var) driver.Named {
	out := make(driver.Named, len(in))
	for i, nv := range in {
		out[i] = nv
		if v, ok := vars[nv.Name]; ok && v != nil {
			out[i].Value = v.Resolve()
		}
	}
	return out
}
