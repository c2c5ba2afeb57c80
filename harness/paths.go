package harness

import (
	"fmt"
	"path/filepath"
)

// MatrixPaths returns the A and B input files for a matrix size.
func MatrixPaths(matrixDir string, size int) (string, string) {
	return filepath.Join(matrixDir, fmt.Sprintf("A_%d.bin", size)),
		filepath.Join(matrixDir, fmt.Sprintf("B_%d.bin", size))
}
