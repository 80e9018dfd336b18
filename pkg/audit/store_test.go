package audit

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/carevault/hdms-in-go/pkg/identity"
	"github.com/carevault/hdms-in-go/pkg/model"
)

func TestStoreSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStoreWithDB(db)

	event := NewRetrieveEvent(&identity.Identity{
		Username: "alice",
		Role:     model.RoleNurse,
	}, "P001")

	mock.ExpectExec(`INSERT INTO audit_entries`).
		WithArgs("alice", "nurse", "Retrieve Patient", "2024-01-05 09:30:00").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Save(event, "2024-01-05 09:30:00")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreSave_SentinelLogin(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStoreWithDB(db)

	mock.ExpectExec(`INSERT INTO audit_entries`).
		WithArgs("Invalid User", "No Role", "Unsuccessful Login", "2024-01-05 09:30:00").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Save(NewLoginEvent(nil, false), "2024-01-05 09:30:00")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreSave_InsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStoreWithDB(db)

	mock.ExpectExec(`INSERT INTO audit_entries`).
		WillReturnError(errors.New("disk full"))

	err = store.Save(NewLogoutEvent(&identity.Identity{Username: "bob", Role: model.RoleAdmin}), "2024-01-05 09:30:00")
	require.Error(t, err)
}

func TestNewStore_EmptyPathDisablesMirror(t *testing.T) {
	store, err := NewStore("")
	require.NoError(t, err)
	require.Nil(t, store)
}
