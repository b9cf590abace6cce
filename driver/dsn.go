package driver

import "fmt"

// MakeDSN builds an Oracle connect descriptor for the given address. A
// non-empty sid takes precedence over serviceName.
func MakeDSN(host string, port int, sid, serviceName string) string {
	if sid != "" {
		return fmt.Sprintf(
			"(DESCRIPTION=(ADDRESS=(PROTOCOL=TCP)(HOST=%s)(PORT=%d))(CONNECT_DATA=(SID=%s)))",
			host, port, sid,
		)
	}
	return fmt.Sprintf(
		"(DESCRIPTION=(ADDRESS=(PROTOCOL=TCP)(HOST=%s)(PORT=%d))(CONNECT_DATA=(SERVICE_NAME=%s)))",
		host, port, serviceName,
	)
}

// EZConnectDSN builds the short host:port/service connect form.
func EZConnectDSN(host string, port int, service string) string {
	return fmt.Sprintf("%s:%d/%s", host, port, service)
}
