package matrix

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const elemSize = 4

// Load reads an n×n matrix from a headerless file of n*n little-endian
// int32 values in row-major order. The file must hold exactly that many
// bytes.
func Load(path string, n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("load %s: %w", path, ErrBadDimension)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open matrix %s: %w", path, err)
	}
	defer f.Close()

	m, err := decode(bufio.NewReader(f), n)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return m, nil
}

func decode(r io.Reader, n int) (*Matrix, error) {
	raw := make([]byte, n*n*elemSize)

	read, err := io.ReadFull(r, raw)
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return nil, fmt.Errorf(
			"got %d bytes, want %d: %w", read, len(raw), ErrShortFile,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var probe [1]byte
	if extra, _ := r.Read(probe[:]); extra > 0 {
		return nil, fmt.Errorf("more than %d bytes: %w", len(raw), ErrTrailingData)
	}

	m := &Matrix{n: n, data: make([]int32, n*n)}
	for i := range m.data {
		m.data[i] = int32(binary.LittleEndian.Uint32(raw[i*elemSize:]))
	}

	return m, nil
}

// Write stores m at path in the format Load reads, truncating any existing
// file.
func Write(path string, m *Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create matrix %s: %w", path, err)
	}

	if err := encode(f, m); err != nil {
		f.Close()

		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

func encode(w io.Writer, m *Matrix) error {
	bw := bufio.NewWriter(w)

	var buf [elemSize]byte
	for _, v := range m.data {
		binary.LittleEndian.PutUint32(buf[:], uint32(v))
		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
	}

	return bw.Flush()
}
