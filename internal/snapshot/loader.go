package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"supplychain-backend/internal/models"
)

// Load reads a snapshot from a JSON file holding the six domain values.
// The file is validated before it is returned, so a malformed record
// never reaches the classifier.
func Load(path string) (*models.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var s models.Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot file: %w", err)
	}

	if err := Validate(&s); err != nil {
		return nil, fmt.Errorf("validate snapshot file: %w", err)
	}
	return &s, nil
}
