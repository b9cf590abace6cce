// Package godrorconn opens Oracle sessions with the godror (ODPI-C) driver,
// for deployments that need thick-client features such as OS authentication
// or client-side result caching. It requires the Oracle client libraries at
// runtime; the pure Go goora connector is the default.
package godrorconn

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/godror/godror" // registers the "godror" database/sql driver
	"github.com/jmoiron/sqlx"

	"github.com/ignaciocaff/orahook/driver"
	"github.com/ignaciocaff/orahook/driver/sqlconn"
)

// Connector builds a godror logfmt connect string from the resolved options
// and opens a single-session connection.
type Connector struct {
	// ExtraParams are appended verbatim to the connect string, e.g.
	// `libDir="/opt/oracle/instantclient"`.
	ExtraParams string
}

// Connect opens the session and verifies it with a ping.
func (c Connector) Connect(ctx context.Context, o driver.ConnectOptions) (driver.Conn, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "user=%q password=%q connectString=%q standaloneConnection=1",
		o.User, o.Password, o.DSN)
	switch o.Mode {
	case driver.ModeSysDBA:
		b.WriteString(" sysdba=1")
	case driver.ModeSysOper:
		b.WriteString(" sysoper=1")
	case driver.ModeSysASM:
		b.WriteString(" sysasm=1")
	case driver.ModeDefault, driver.ModeSysBackup, driver.ModeSysDG, driver.ModeSysKM:
		// godror's connect string carries no flag for the backup, DG and
		// KM roles; the session opens without the elevated role.
	}
	if o.Encoding != "" {
		fmt.Fprintf(&b, " charset=%q", o.Encoding)
	}
	if o.Events {
		b.WriteString(" enableEvents=1")
	}
	if c.ExtraParams != "" {
		b.WriteString(" ")
		b.WriteString(c.ExtraParams)
	}
	db, err := sqlx.ConnectContext(ctx, "godror", b.String())
	if err != nil {
		return nil, err
	}
	return sqlconn.New(db), nil
}
