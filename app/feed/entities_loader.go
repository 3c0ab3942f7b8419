package feed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadEntities builds the named-entity substitution table for the tokenizer.
// When path is non-empty it names a YAML file of entity-name to literal-text
// pairs that is merged over the built-in defaults, so operators can patch in
// whatever exotic entities their feed corpus needs without a rebuild.
func LoadEntities(path string) (map[string]string, error) {
	entities := defaultEntities()

	if path == "" {
		return entities, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entities file: %w", err)
	}

	overlay := make(map[string]string)
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse entities file %s: %w", path, err)
	}

	for name, text := range overlay {
		entities[name] = text
	}

	return entities, nil
}
