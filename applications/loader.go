package applications

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile builds a directory from a JSON file holding an array of
// applications. A missing file yields an empty directory; a malformed
// one is a startup failure.
func LoadFile(path string) (*InMemoryRepo, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewInMemoryRepo(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading applications file: %w", err)
	}

	var apps []Application
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("parsing applications file %s: %w", path, err)
	}
	for _, app := range apps {
		if app.Name == "" {
			return nil, fmt.Errorf("application without a name in %s", path)
		}
	}
	return NewInMemoryRepo(apps...), nil
}
