package render

import (
	"encoding/json"
	"fmt"

	"github.com/snapsys/snapsys/internal/models"
)

// JSON renders the snapshot as indented JSON. Unavailable categories encode
// as {"unavailable": "<reason>"} via the Metric marshaler, preserving the
// same zero-vs-missing distinction the text output makes.
func JSON(snap *models.Snapshot) (string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	return string(data) + "\n", nil
}
