// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prepkit/sample"
	"github.com/katalvlaran/prepkit/table"
)

// run executes prepkit with args against stdin and returns stdout.
// A config path inside a temp dir keeps a stray prepkit.yaml out of play.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func readCSV(t *testing.T, s string) *table.Table {
	t.Helper()
	tb, err := table.ReadCSV(strings.NewReader(s))
	require.NoError(t, err)

	return tb
}

func TestSplit_CSVFile(t *testing.T) {
	in := writeFile(t, "ids.csv", "id\nx\ny\nz\nx\n")
	out, err := run(t, "", "split", "--in", in, "--key", "id", "--frac", "0.6")
	require.NoError(t, err)
	assert.Equal(t, "id,sample\nx,test\ny,train\nz,test\nx,test\n", out)
}

func TestSplit_StdinAndSampleColumn(t *testing.T) {
	out, err := run(t, "id\nx\ny\n", "split", "--in", "-", "--key", "id", "--frac", "0.6", "--sample-col", "part")
	require.NoError(t, err)
	assert.Equal(t, "id,part\nx,test\ny,train\n", out)
}

func TestSplit_CompositeKeyToFile(t *testing.T) {
	in := writeFile(t, "k.csv", "col1,col2\nA,1\nA,2\n")
	dst := filepath.Join(t.TempDir(), "out.csv")
	out, err := run(t, "", "split", "--in", in, "--key", "col1,col2", "--frac", "0.5", "--out", dst)
	require.NoError(t, err)
	assert.Empty(t, out)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "col1,col2,sample\nA,1,test\nA,2,train\n", string(got))
}

func TestWinsorize_AllRows(t *testing.T) {
	in := writeFile(t, "v.csv", "v\n1\n2\n3\n4\n")
	out, err := run(t, "", "winsorize", "--in", in, "--columns", "v", "--lower", "0.25", "--upper", "0.75")
	require.NoError(t, err)
	assert.Equal(t, "v\n1.75\n2.0\n3.0\n3.25\n", out)
}

func TestWinsorize_FitOnTrain(t *testing.T) {
	in := writeFile(t, "v.csv", "v,sample\n1,train\n2,train\n3,train\n100,test\n")
	out, err := run(t, "", "winsorize", "--in", in, "--columns", "v",
		"--lower", "0", "--upper", "1", "--fit-on", "train")
	require.NoError(t, err)
	assert.Equal(t, "v,sample\n1.0,train\n2.0,train\n3.0,train\n3.0,test\n", out)
}

func TestPrepare_SQLite(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "data.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `CREATE TABLE obs (id INTEGER, x REAL)`)
	require.NoError(t, err)
	for i := 1; i <= 20; i++ {
		_, err = db.ExecContext(ctx, `INSERT INTO obs VALUES (?, ?)`, i, float64(i*i))
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	trainPath := filepath.Join(t.TempDir(), "train.csv")
	out, err := run(t, "", "prepare",
		"--sqlite", dbPath, "--query", "SELECT id, x FROM obs ORDER BY id",
		"--key", "id", "--columns", "x", "--lower", "0.1", "--upper", "0.9",
		"--train-out", trainPath)
	require.NoError(t, err)

	full := readCSV(t, out)
	require.Equal(t, 20, full.Len())
	require.Equal(t, []string{"id", "x", "sample"}, full.Columns())

	trainRaw, err := os.ReadFile(trainPath)
	require.NoError(t, err)
	train := readCSV(t, string(trainRaw))

	labels, err := full.Column("sample")
	require.NoError(t, err)
	nTrain := 0
	for _, l := range labels {
		if l.Text() == sample.Train {
			nTrain++
		}
	}
	assert.Equal(t, nTrain, train.Len())
	assert.Positive(t, nTrain)
}

func TestPrepare_ConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "prepkit.yaml", `
sample:
  columns: id
  training_frac: 1
  sample_column: part
winsor:
  columns: [v]
  lower: 0
  upper: 1
`)
	in := writeFile(t, "v.csv", "id,v\n1,5\n2,7\n")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "prepare", "--in", in})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "id,v,part\n1,5.0,train\n2,7.0,train\n", out.String())
}

func TestSplit_Arrow(t *testing.T) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{{Name: "id", Type: arrow.BinaryTypes.String}}, nil)

	path := filepath.Join(t.TempDir(), "ids.arrow")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := ipc.NewWriter(f, ipc.WithSchema(schema), ipc.WithAllocator(mem))

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()
	for _, batch := range [][]string{{"x", "y"}, {"z", "x"}} {
		b.Field(0).(*array.StringBuilder).AppendValues(batch, nil)
		rec := b.NewRecord()
		require.NoError(t, w.Write(rec))
		rec.Release()
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	out, err := run(t, "", "split", "--arrow", path, "--key", "id", "--frac", "0.6")
	require.NoError(t, err)
	assert.Equal(t, "id,sample\nx,test\ny,train\nz,test\nx,test\n", out)
}

func TestInputErrors(t *testing.T) {
	csvPath := writeFile(t, "v.csv", "v\n1\n")
	cases := []struct {
		name string
		args []string
		want error
	}{
		{"no input", []string{"split", "--key", "v"}, errNoInput},
		{"two inputs", []string{"split", "--key", "v", "--in", csvPath, "--sqlite", "x.db"}, errManyInputs},
		{"sqlite without query", []string{"split", "--key", "v", "--sqlite", "x.db"}, errQueryRequired},
		{"bad fit-on", []string{"winsorize", "--in", csvPath, "--columns", "v", "--fit-on", "test"}, errFitOn},
		{"bad fraction", []string{"split", "--in", csvPath, "--key", "v", "--frac", "2"}, sample.ErrInvalidFraction},
		{"missing key", []string{"split", "--in", csvPath, "--key", "nope"}, table.ErrColumnNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, "", tc.args...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
