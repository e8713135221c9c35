package store

import (
	"path/filepath"
	"testing"

	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/persistence/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := database.NewConnection("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	st, err := New(db, logging.NewTestLogger())
	require.NoError(t, err)
	return st
}

func TestGetAbsentKey(t *testing.T) {
	st := newTestStore(t)

	value, found, err := st.Get(KeyCatalog)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestSetGetOverwrite(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.Set(KeyLeads, `[{"id":"a"}]`))

	value, found, err := st.Get(KeyLeads)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"a"}]`, value)

	require.NoError(t, st.Set(KeyLeads, `[]`))

	value, found, err = st.Get(KeyLeads)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, value)
}

func TestKeysAreIndependent(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.Set(KeyUnlockToken, "token-value"))
	require.NoError(t, st.Set(KeyAdminFlag, "true"))

	require.NoError(t, st.Delete(KeyUnlockToken))

	_, found, err := st.Get(KeyUnlockToken)
	require.NoError(t, err)
	assert.False(t, found)

	value, found, err := st.Get(KeyAdminFlag)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", value)
}

func TestDeleteAbsentKeySucceeds(t *testing.T) {
	st := newTestStore(t)
	assert.NoError(t, st.Delete(KeyAdminFlag))
}

func TestClear(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.Set(KeyCatalog, "[]"))
	require.NoError(t, st.Set(KeyLeads, "[]"))
	require.NoError(t, st.Set(KeyUnlockToken, "tok"))

	require.NoError(t, st.Clear(KeyCatalog, KeyLeads, KeyUnlockToken, KeyAdminFlag))

	for _, key := range []string{KeyCatalog, KeyLeads, KeyUnlockToken, KeyAdminFlag} {
		_, found, err := st.Get(key)
		require.NoError(t, err)
		assert.False(t, found, key)
	}
}
