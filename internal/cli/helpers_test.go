package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akwilson/join/internal/source"
)

// seedDB creates a SQLite database at path with a names table holding the
// given values.
func seedDB(t *testing.T, path string, names ...string) {
	t.Helper()

	db, err := source.OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE names (name TEXT NOT NULL)`)
	require.NoError(t, err)
	for _, n := range names {
		_, err = db.Exec(`INSERT INTO names (name) VALUES (?)`, n)
		require.NoError(t, err)
	}
}
