package loader

import (
	"encoding/json"
	"fmt"
	"os"
)

// RawRecord is one untyped record from a vendor dataset. Field names and
// value shapes vary per category and per dataset generation.
type RawRecord map[string]any

// readDataset reads a category dataset: a JSON array of free-form
// objects. A missing file is reported as ErrSourceNotFound.
func readDataset(path string) ([]RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}

	var records []RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	return records, nil
}
