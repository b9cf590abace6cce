package orahook

import (
	"github.com/ignaciocaff/orahook/driver"
	"github.com/ignaciocaff/orahook/internal/core"
)

// ConnectionRecord is the read-only connection snapshot supplied by the
// credential store. Extra carries free-form JSON with the recognized keys
// dsn, sid, service_name, encoding, nencoding, mode, purity, threaded and
// events; unknown keys are ignored.
type ConnectionRecord = core.Record

// Errors surfaced before any driver call.
var (
	ErrEmptyRows     = core.ErrEmptyRows
	ErrUnknownMode   = driver.ErrUnknownMode
	ErrUnknownPurity = driver.ErrUnknownPurity
)
