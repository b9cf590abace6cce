package driver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMode reports a session mode token outside the supported set.
	ErrUnknownMode = errors.New("unknown session mode")
	// ErrUnknownPurity reports a purity token outside the supported set.
	ErrUnknownPurity = errors.New("unknown connection purity")
)

// SessionMode is the administrative privilege a session is opened with.
type SessionMode int

const (
	ModeDefault SessionMode = iota
	ModeSysDBA
	ModeSysASM
	ModeSysOper
	ModeSysBackup
	ModeSysDG
	ModeSysKM
)

var modeTokens = map[string]SessionMode{
	"sysdba":  ModeSysDBA,
	"sysasm":  ModeSysASM,
	"sysoper": ModeSysOper,
	"sysbkp":  ModeSysBackup,
	"sysdgd":  ModeSysDG,
	"syskmt":  ModeSysKM,
}

// ParseSessionMode maps a configuration token to its SessionMode. The lookup
// is case-insensitive.
func ParseSessionMode(token string) (SessionMode, error) {
	if m, ok := modeTokens[strings.ToLower(token)]; ok {
		return m, nil
	}
	return ModeDefault, fmt.Errorf("%w: %q", ErrUnknownMode, token)
}

func (m SessionMode) String() string {
	for token, mode := range modeTokens {
		if mode == m {
			return token
		}
	}
	return "default"
}

// Purity is the DRCP session reuse classification.
type Purity int

const (
	PurityAbsent Purity = iota
	PurityNew
	PuritySelf
	PurityDefault
)

var purityTokens = map[string]Purity{
	"new":     PurityNew,
	"self":    PuritySelf,
	"default": PurityDefault,
}

// ParsePurity maps a configuration token to its Purity. The lookup is
// case-insensitive.
func ParsePurity(token string) (Purity, error) {
	if p, ok := purityTokens[strings.ToLower(token)]; ok {
		return p, nil
	}
	return PurityAbsent, fmt.Errorf("%w: %q", ErrUnknownPurity, token)
}

func (p Purity) String() string {
	for token, purity := range purityTokens {
		if purity == p {
			return token
		}
	}
	return "absent"
}

// ConnectOptions is everything an adapter needs to open a session. DSN holds
// the canonical connect descriptor; the structured identity fields carry the
// same information for adapters that build a native connect string instead of
// parsing the descriptor back.
type ConnectOptions struct {
	User     string
	Password string

	DSN         string
	Host        string
	Port        int
	ServiceName string
	SID         string

	Encoding  string
	NEncoding string
	Mode      SessionMode
	Purity    Purity
	Threaded  bool
	Events    bool
}
