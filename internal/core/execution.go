package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ignaciocaff/orahook/driver"
)

// ErrEmptyRows reports a bulk insert invoked with no rows.
var ErrEmptyRows = errors.New("rows must not be empty")

// Run executes one statement verbatim with optional bind parameters and
// commits.
func (s *Session) Run(ctx context.Context, stmt string, params driver.Params) error {
	s.log.Debug("running statement", zap.String("sql", stmt))
	var err error
	switch p := params.(type) {
	case nil:
		err = s.cur.Execute(ctx, stmt)
	case driver.Positional:
		err = s.cur.Execute(ctx, stmt, p...)
	case driver.Named:
		err = s.cur.ExecuteNamed(ctx, stmt, p)
	}
	if err != nil {
		return err
	}
	return s.conn.Commit()
}

// InsertRows loads rows into table with one direct-path INSERT built as
// literal SQL, then commits. When targetFields is empty the column list is
// omitted and a single space remains in its place.
func (s *Session) InsertRows(ctx context.Context, table string, rows [][]any, targetFields []string) error {
	if len(rows) == 0 {
		s.log.Debug("no rows to insert", zap.String("table", table))
		return nil
	}
	fields := ""
	if len(targetFields) > 0 {
		fields = "(" + strings.Join(targetFields, ", ") + ")"
	}
	tuples := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = SerializeCell(cell)
		}
		tuples[i] = "(" + strings.Join(cells, ",") + ")"
	}
	stmt := fmt.Sprintf("INSERT /*+ APPEND */ INTO %s %s VALUES %s",
		table, fields, strings.Join(tuples, ",\n"))
	s.log.Debug("generated sql", zap.String("sql", stmt))
	if err := s.cur.Execute(ctx, stmt); err != nil {
		return err
	}
	if err := s.conn.Commit(); err != nil {
		return err
	}
	s.log.Info("loaded rows", zap.Int("rows", len(rows)), zap.String("table", table))
	return nil
}

// BulkInsertRows loads rows into table through a prepared statement and the
// driver's batch bind path. With commitEvery > 0 the row set is split into
// consecutive chunks of that size and each chunk is prepared, executed and
// committed on its own; a mid-batch failure leaves earlier chunks committed.
// With commitEvery <= 0 the whole set runs as one batch with a single commit.
func (s *Session) BulkInsertRows(ctx context.Context, table string, rows [][]any, targetFields []string, commitEvery int) error {
	if len(rows) == 0 {
		return fmt.Errorf("bulk insert into %s: %w", table, ErrEmptyRows)
	}
	fields := ""
	if len(targetFields) > 0 {
		fields = "(" + strings.Join(targetFields, ", ") + ")"
	}
	placeholders := make([]string, len(rows[0]))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf(":%d", i+1)
	}
	stmt := fmt.Sprintf("insert into %s %s values (%s)",
		table, fields, strings.Join(placeholders, ", "))
	s.log.Debug("generated sql", zap.String("sql", stmt))

	size := commitEvery
	if size <= 0 {
		size = len(rows)
	}
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		if err := s.cur.Prepare(ctx, stmt); err != nil {
			return err
		}
		if err := s.cur.ExecuteMany(ctx, "", rows[start:end]); err != nil {
			return err
		}
		if err := s.conn.Commit(); err != nil {
			return err
		}
		s.log.Info("loaded rows so far", zap.Int("rows", end), zap.String("table", table))
	}
	s.log.Info("done loading", zap.Int("rows", len(rows)), zap.String("table", table))
	return nil
}

// GetRecords runs a query and returns every row as a column-keyed map.
func (s *Session) GetRecords(ctx context.Context, stmt string, params driver.Positional) ([]map[string]any, error) {
	s.log.Debug("running query", zap.String("sql", stmt))
	return s.cur.Query(ctx, stmt, params...)
}

// GetFirst runs a query and returns the first row, or nil when the result
// set is empty.
func (s *Session) GetFirst(ctx context.Context, stmt string, params driver.Positional) (map[string]any, error) {
	records, err := s.GetRecords(ctx, stmt, params)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

// TestConnection probes the session with a dual query and reports the
// outcome as a status and message.
func (s *Session) TestConnection(ctx context.Context) (bool, string) {
	if _, err := s.cur.Query(ctx, "select 1 from dual"); err != nil {
		return false, err.Error()
	}
	return true, "Connection successfully tested"
}
