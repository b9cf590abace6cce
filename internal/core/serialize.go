package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const dateFormat = "2006-01-02 15:04:05"

// SerializeCell renders one cell as an Oracle SQL literal for statements
// built as plain text. Strings are single-quoted with embedded quotes
// doubled, times become a to_date expression, nil and NaN become NULL, and
// everything else uses its default rendering unquoted.
func SerializeCell(cell any) string {
	switch v := cell.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	case time.Time:
		return fmt.Sprintf("to_date('%s','YYYY-MM-DD HH24:MI:SS')", v.Format(dateFormat))
	case float64:
		if math.IsNaN(v) {
			return "NULL"
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		if math.IsNaN(float64(v)) {
			return "NULL"
		}
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
