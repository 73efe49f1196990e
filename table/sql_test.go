// SPDX-License-Identifier: MIT

package table_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/prepkit/table"
)

func TestReadSQL(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1) // one connection, one in-memory database

	_, err = db.ExecContext(ctx, `CREATE TABLE events (id INTEGER, user TEXT, amount REAL)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO events VALUES (1, 'u1', 9.5), (2, NULL, 3), (3, 'u3', NULL)`)
	require.NoError(t, err)

	tb, err := table.ReadSQL(ctx, db, `SELECT id, user, amount FROM events WHERE id >= ? ORDER BY id`, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"id", "user", "amount"}, tb.Columns())
	require.Equal(t, 2, tb.Len())

	row, err := tb.Row(0)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([]table.Value{table.Int(2), table.Null(), table.Float(3)}, row, valueCmp))
}

func TestReadSQL_BadQuery(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = table.ReadSQL(context.Background(), db, `SELECT * FROM missing`)
	require.Error(t, err)
}
