package repository

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed seed/*.json
var seedFS embed.FS

// loadSeed decodes one of the embedded seed files into out.
func loadSeed(name string, out any) error {
	data, err := seedFS.ReadFile("seed/" + name)
	if err != nil {
		return fmt.Errorf("failed to read seed %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode seed %s: %w", name, err)
	}
	return nil
}
