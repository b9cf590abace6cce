// Package core holds the connection resolver and the statement execution
// engine behind the public hook API.
package core

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/ignaciocaff/orahook/driver"
)

// Record is the read-only connection snapshot supplied by the credential
// store. Extra carries free-form JSON driver options.
type Record struct {
	Login    string
	Password string
	Host     string
	Schema   string
	Port     int
	Extra    json.RawMessage
}

// extraOptions is the recognized subset of Record.Extra. Unknown keys are
// ignored.
type extraOptions struct {
	DSN         string `json:"dsn"`
	SID         string `json:"sid"`
	ServiceName string `json:"service_name"`
	Encoding    string `json:"encoding"`
	NEncoding   string `json:"nencoding"`
	Mode        string `json:"mode"`
	Purity      string `json:"purity"`
	Threaded    *bool  `json:"threaded"`
	Events      *bool  `json:"events"`
}

// Resolve derives driver connect options from a connection record.
//
// The DSN form follows the sid > service_name > host:port/schema precedence;
// an explicit extra.dsn is ignored whenever a sid is given. Setting encoding
// without nencoding mirrors the value into nencoding.
func Resolve(rec Record) (driver.ConnectOptions, error) {
	opts := driver.ConnectOptions{
		User:     rec.Login,
		Password: rec.Password,
		Host:     rec.Host,
		Port:     rec.Port,
	}

	var extra extraOptions
	if len(rec.Extra) > 0 {
		if err := json.Unmarshal(rec.Extra, &extra); err != nil {
			return opts, fmt.Errorf("decode connection extra options: %w", err)
		}
	}

	switch {
	case extra.SID != "":
		opts.SID = extra.SID
		opts.DSN = driver.MakeDSN(rec.Host, rec.Port, extra.SID, "")
	case extra.ServiceName != "":
		opts.ServiceName = extra.ServiceName
		opts.DSN = driver.MakeDSN(rec.Host, rec.Port, "", extra.ServiceName)
	default:
		opts.ServiceName = rec.Schema
		opts.DSN = driver.EZConnectDSN(rec.Host, rec.Port, rec.Schema)
	}

	if extra.Encoding != "" {
		opts.Encoding = extra.Encoding
		opts.NEncoding = extra.Encoding
	}
	if extra.NEncoding != "" {
		opts.NEncoding = extra.NEncoding
	}

	if extra.Mode != "" {
		mode, err := driver.ParseSessionMode(extra.Mode)
		if err != nil {
			return opts, err
		}
		opts.Mode = mode
	}
	if extra.Purity != "" {
		purity, err := driver.ParsePurity(extra.Purity)
		if err != nil {
			return opts, err
		}
		opts.Purity = purity
	}

	if extra.Threaded != nil {
		opts.Threaded = *extra.Threaded
	}
	if extra.Events != nil {
		opts.Events = *extra.Events
	}
	return opts, nil
}

// Session is a live connection with its cursor. A session belongs to exactly
// one hook instance and must not be shared across goroutines.
type Session struct {
	conn driver.Conn
	cur  driver.Cursor
	log  *zap.Logger
}

// Connect resolves the record, opens the session through the connector and
// switches to the record's schema. Connection failures from the driver are
// returned unmodified.
func Connect(ctx context.Context, connector driver.Connector, rec Record, log *zap.Logger) (*Session, error) {
	opts, err := Resolve(rec)
	if err != nil {
		return nil, err
	}
	conn, err := connector.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if rec.Schema != "" {
		if err := conn.SetCurrentSchema(ctx, rec.Schema); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}
	cur, err := conn.Cursor()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	log.Info("connected to oracle", zap.String("dsn", opts.DSN), zap.String("user", opts.User))
	return &Session{conn: conn, cur: cur, log: log}, nil
}

// Close releases the cursor and the connection. Safe to call more than once.
func (s *Session) Close() error {
	if s.conn == nil {
		return nil
	}
	_ = s.cur.Close()
	conn := s.conn
	s.conn = nil
	return conn.Close()
}
