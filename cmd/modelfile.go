package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gostructural/frame2d/internal/model"
)

// loadDefinition reads a model definition file. YAML is the default;
// .json files are decoded as JSON.
func loadDefinition(path string) (model.Definition, error) {
	var def model.Definition
	data, err := os.ReadFile(path)
	if err != nil {
		return def, fmt.Errorf("reading model file: %w", err)
	}
	switch filepath.Ext(path) {
	case ".json":
		err = json.Unmarshal(data, &def)
	default:
		err = yaml.Unmarshal(data, &def)
	}
	if err != nil {
		return def, fmt.Errorf("parsing model file %s: %w", path, err)
	}
	return def, nil
}
