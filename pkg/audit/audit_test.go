package audit

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carevault/hdms-in-go/pkg/authz"
	"github.com/carevault/hdms-in-go/pkg/identity"
	"github.com/carevault/hdms-in-go/pkg/model"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)
	}
}

func readLog(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func nurse() *identity.Identity {
	return &identity.Identity{Username: "alice", Role: model.RoleNurse}
}

func TestNewLogger_BootstrapsHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage_log.csv")

	_, err := NewLogger(path)
	require.NoError(t, err)

	rows := readLog(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Username", "Role", "Action", "Timestamp"}, rows[0])
}

func TestNewLogger_KeepsExistingEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage_log.csv")

	l, err := NewLogger(path, WithClock(fixedClock()))
	require.NoError(t, err)
	require.NoError(t, l.Log(NewLoginEvent(nurse(), true)))

	// A second logger over the same file must append, not truncate.
	l2, err := NewLogger(path, WithClock(fixedClock()))
	require.NoError(t, err)
	require.NoError(t, l2.Log(NewLogoutEvent(nurse())))

	rows := readLog(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, "Successful Login", rows[1][2])
	assert.Equal(t, "Logout", rows[2][2])
}

func TestLog_Entry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage_log.csv")
	l, err := NewLogger(path, WithClock(fixedClock()))
	require.NoError(t, err)

	require.NoError(t, l.Log(NewRetrieveEvent(nurse(), "P001")))

	rows := readLog(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"alice", "nurse", "Retrieve Patient", "2024-01-05 09:30:00"}, rows[1])
}

func TestLog_FailedLoginUsesSentinels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage_log.csv")
	l, err := NewLogger(path, WithClock(fixedClock()))
	require.NoError(t, err)

	require.NoError(t, l.Log(NewLoginEvent(nil, false)))

	rows := readLog(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Invalid User", "No Role", "Unsuccessful Login", "2024-01-05 09:30:00"}, rows[1])
}

func TestEventActions(t *testing.T) {
	id := nurse()
	tests := []struct {
		name   string
		event  Event
		action string
	}{
		{"login success", NewLoginEvent(id, true), "Successful Login"},
		{"login failure", NewLoginEvent(id, false), "Unsuccessful Login"},
		{"logout", NewLogoutEvent(id), "Logout"},
		{"retrieve", NewRetrieveEvent(id, "P1"), "Retrieve Patient"},
		{"add", NewAddEvent(id, "P1", "V1"), "Add Patient"},
		{"remove", NewRemoveEvent(id, "P1"), "Remove Patient"},
		{"count", NewCountEvent(id, "2024-01-05"), "Count Visits"},
		{"stats", NewStatsEvent(id), "Generate Statistics"},
		{"import", NewImportEvent(id, "batch.csv", 2), "Import Records"},
		{"denied", NewDeniedEvent(id, authz.OpStats), "Permission Denied: stats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.action, tt.event.Action())
		})
	}
}

func TestLoginEvent_FailureAlwaysSentinel(t *testing.T) {
	// Even when the attempted username is known, a failed login is
	// recorded under the sentinel identity.
	e := NewLoginEvent(nurse(), false)
	assert.Equal(t, identity.InvalidUser, e.Username())
	assert.Equal(t, identity.NoRole, e.Role())
}
