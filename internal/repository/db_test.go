package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "touchpoint.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}
