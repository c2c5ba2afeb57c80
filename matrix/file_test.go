package matrix

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeRaw(t *testing.T, values []int32) string {
	t.Helper()

	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}

	path := filepath.Join(t.TempDir(), "m.bin")
	require.NoError(t, os.WriteFile(path, buf, 0o644))

	return path
}

func TestLoadRowMajorLittleEndian(t *testing.T) {
	path := writeRaw(t, []int32{1, 2, 3, 4})

	m, err := Load(path, 2)
	require.NoError(t, err)
	require.Equal(t, [][]int32{{1, 2}, {3, 4}}, m.Rows())
}

func TestWriteLoadRoundTrip(t *testing.T) {
	rows := [][]int32{
		{0, -1, math.MaxInt32},
		{math.MinInt32, 42, 7},
		{9, 8, -123456},
	}

	m, err := FromRows(rows)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "A_3.bin")
	require.NoError(t, Write(path, m))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(3*3*4), info.Size())

	got, err := Load(path, 3)
	require.NoError(t, err)
	require.Equal(t, rows, got.Rows())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		values  []int32
		n       int
		wantErr error
	}{
		{name: "short file", values: []int32{1, 2, 3}, n: 2, wantErr: ErrShortFile},
		{name: "empty file", values: nil, n: 1, wantErr: ErrShortFile},
		{name: "trailing data", values: []int32{1, 2, 3, 4, 5}, n: 2, wantErr: ErrTrailingData},
		{name: "zero dimension", values: []int32{1}, n: 0, wantErr: ErrBadDimension},
		{name: "negative dimension", values: []int32{1}, n: -3, wantErr: ErrBadDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRaw(t, tt.values)

			m, err := Load(path, tt.n)
			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, m)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.bin"), 2)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromRowsRejectsRagged(t *testing.T) {
	_, err := FromRows([][]int32{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = FromRows(nil)
	require.ErrorIs(t, err, ErrBadDimension)
}
