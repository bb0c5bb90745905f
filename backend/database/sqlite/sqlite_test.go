package sqlite

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/PressureTank/idiomatic/backend/user"
)

func openTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	// a private in-memory database per test
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := Open(dsn, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAndGetUser(t *testing.T) {
	db := openTestDB(t)

	u, err := db.GetUserByUsername("john_doe")
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, db.CreateUser(&user.User{Username: "john_doe", Email: "john@example.com"}))

	u, err = db.GetUserByUsername("john_doe")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "john@example.com", u.Email)
}

func TestCreateDuplicateUser(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.CreateUser(&user.User{Username: "john_doe", Email: "john@example.com"}))

	err := db.CreateUser(&user.User{Username: "john_doe", Email: "another@example.com"})
	require.ErrorIs(t, err, user.ErrUserExists)

	u, err := db.GetUserByUsername("john_doe")
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", u.Email)
}

func TestManagerOnSQLite(t *testing.T) {
	m := user.NewManager(openTestDB(t), zap.NewNop())

	require.NoError(t, m.AddUser("john_doe", "john@example.com"))
	assert.ErrorIs(t, m.AddUser("john_doe", "another@example.com"), user.ErrUserExists)

	email, err := m.GetUser("john_doe")
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", email)

	_, err = m.GetUser("ghost")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestQueryAfterClose(t *testing.T) {
	db, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = db.GetUserByUsername("john_doe")
	assert.Error(t, err)
}
