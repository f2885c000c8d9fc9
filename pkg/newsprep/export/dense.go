package export

import (
	"encoding/json"
	"fmt"
	"os"
)

// DenseVectorsJSONL writes fixed-length document vectors one JSON array
// per line, preserving row order.
func DenseVectorsJSONL(path string, vectors [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, vec := range vectors {
		if err := enc.Encode(vec); err != nil {
			return err
		}
	}
	return nil
}
