// Package goora opens Oracle sessions with the pure Go sijms/go-ora driver.
// It is the default connector for the hook.
package goora

import (
	"context"

	"github.com/jmoiron/sqlx"
	go_ora "github.com/sijms/go-ora/v2"

	"github.com/ignaciocaff/orahook/driver"
	"github.com/ignaciocaff/orahook/driver/sqlconn"
)

// Connector builds a go-ora connection URL from the resolved options and
// opens a single-session connection. Options the driver has no equivalent
// for (threaded, events, purity) are not forwarded; statement and connect
// timeouts travel through the URL options untouched.
type Connector struct {
	// URLOptions are merged into the generated connection URL, letting
	// callers forward driver settings such as "TIMEOUT" or "TRACE FILE".
	URLOptions map[string]string
}

// Connect opens the session and verifies it with a ping.
func (c Connector) Connect(ctx context.Context, o driver.ConnectOptions) (driver.Conn, error) {
	urlOptions := make(map[string]string, len(c.URLOptions)+3)
	for k, v := range c.URLOptions {
		urlOptions[k] = v
	}
	if o.SID != "" {
		urlOptions["SID"] = o.SID
	}
	switch o.Mode {
	case driver.ModeDefault:
	default:
		urlOptions["dba privilege"] = o.Mode.String()
	}
	if o.Encoding != "" {
		urlOptions["client charset"] = o.Encoding
	}
	url := go_ora.BuildUrl(o.Host, o.Port, o.ServiceName, o.User, o.Password, urlOptions)
	db, err := sqlx.ConnectContext(ctx, "oracle", url)
	if err != nil {
		return nil, err
	}
	return sqlconn.New(db), nil
}
