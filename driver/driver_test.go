package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSessionMode(t *testing.T) {
	tokens := map[string]SessionMode{
		"sysdba":  ModeSysDBA,
		"sysasm":  ModeSysASM,
		"sysoper": ModeSysOper,
		"sysbkp":  ModeSysBackup,
		"sysdgd":  ModeSysDG,
		"syskmt":  ModeSysKM,
	}
	for token, want := range tokens {
		mode, err := ParseSessionMode(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, mode, token)
	}
}

func TestParseSessionModeCaseInsensitive(t *testing.T) {
	mode, err := ParseSessionMode("SYSDBA")
	require.NoError(t, err)
	assert.Equal(t, ModeSysDBA, mode)
}

func TestParseSessionModeUnknown(t *testing.T) {
	_, err := ParseSessionMode("sysfoo")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParsePurity(t *testing.T) {
	tokens := map[string]Purity{
		"new":     PurityNew,
		"self":    PuritySelf,
		"default": PurityDefault,
	}
	for token, want := range tokens {
		purity, err := ParsePurity(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, purity, token)
	}
}

func TestParsePurityUnknown(t *testing.T) {
	_, err := ParsePurity("recycled")
	assert.ErrorIs(t, err, ErrUnknownPurity)
}

func TestMakeDSNWithSID(t *testing.T) {
	dsn := MakeDSN("host", 1521, "xe", "")
	assert.Equal(t,
		"(DESCRIPTION=(ADDRESS=(PROTOCOL=TCP)(HOST=host)(PORT=1521))(CONNECT_DATA=(SID=xe)))",
		dsn,
	)
}

func TestMakeDSNWithServiceName(t *testing.T) {
	dsn := MakeDSN("host", 1521, "", "orclpdb1")
	assert.Equal(t,
		"(DESCRIPTION=(ADDRESS=(PROTOCOL=TCP)(HOST=host)(PORT=1521))(CONNECT_DATA=(SERVICE_NAME=orclpdb1)))",
		dsn,
	)
}

func TestMakeDSNSIDWins(t *testing.T) {
	dsn := MakeDSN("host", 1521, "xe", "orclpdb1")
	assert.Contains(t, dsn, "(SID=xe)")
	assert.NotContains(t, dsn, "SERVICE_NAME")
}

func TestEZConnectDSN(t *testing.T) {
	assert.Equal(t, "host:1522/schema", EZConnectDSN("host", 1522, "schema"))
}
