// SPDX-License-Identifier: MIT

package table_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prepkit/table"
)

const csvFixture = `id,name,score,flag
1,alice,0.5,true
2,,NaN,false
3,"carol, jr",7,
`

func TestReadCSV_Inference(t *testing.T) {
	tb, err := table.ReadCSV(strings.NewReader(csvFixture))
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name", "score", "flag"}, tb.Columns())
	require.Equal(t, 3, tb.Len())

	row, err := tb.Row(1)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([]table.Value{
		table.Int(2), table.Null(), table.Null(), table.Bool(false),
	}, row, valueCmp))

	v, err := tb.At(2, "name")
	require.NoError(t, err)
	require.Equal(t, "carol, jr", v.Text())
	v, err = tb.At(2, "score")
	require.NoError(t, err)
	require.Equal(t, table.KindInt, v.Kind())
}

func TestReadCSV_EmptyAndRagged(t *testing.T) {
	tb, err := table.ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 0, tb.Len())
	require.Empty(t, tb.Columns())

	_, err = table.ReadCSV(strings.NewReader("a,b\n1\n"))
	require.ErrorIs(t, err, csv.ErrFieldCount)
}

func TestWriteCSV_RoundTripKeepsOrder(t *testing.T) {
	tb, err := table.ReadCSV(strings.NewReader(csvFixture))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tb.WriteCSV(&buf))
	require.Equal(t, "id,name,score,flag\n1,alice,0.5,True\n2,,,False\n3,\"carol, jr\",7,\n", buf.String())

	back, err := table.ReadCSV(&buf)
	require.NoError(t, err)
	for i := 0; i < tb.Len(); i++ {
		a, _ := tb.Row(i)
		b, _ := back.Row(i)
		require.Empty(t, cmp.Diff(a, b, valueCmp), "row %d", i)
	}
}
