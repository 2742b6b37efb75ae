package export

import (
	"encoding/json"
	"os"

	"github.com/worldseedr/worldseedr/pkg/choice"
)

// ExportJSON serializes a generated command buffer to indented JSON.
func ExportJSON(commands []choice.Choice) ([]byte, error) {
	return json.MarshalIndent(commands, "", "  ")
}

// ExportJSONCompact serializes a command buffer to compact JSON.
func ExportJSONCompact(commands []choice.Choice) ([]byte, error) {
	return json.Marshal(commands)
}

// SaveJSONToFile writes an indented JSON export to filepath with 0644
// permissions.
func SaveJSONToFile(commands []choice.Choice, filepath string) error {
	data, err := ExportJSON(commands)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// SaveJSONCompactToFile writes a compact JSON export to filepath with 0644
// permissions.
func SaveJSONCompactToFile(commands []choice.Choice, filepath string) error {
	data, err := ExportJSONCompact(commands)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
