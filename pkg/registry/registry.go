// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// LoadSeed reads, schema-validates, and decodes a catalog seed file.
func LoadSeed(path string) (*ActivitySeed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := validateSeed(data); err != nil {
		return nil, err
	}

	var seed ActivitySeed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	if err := checkRosters(&seed); err != nil {
		return nil, err
	}

	return &seed, nil
}

func validateSeed(data []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(seedSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("seed validation failed: %v", errs)
	}

	return nil
}

// checkRosters enforces what JSON Schema cannot: unique activity names
// and no duplicate email within one activity's roster.
func checkRosters(seed *ActivitySeed) error {
	names := make(map[string]bool, len(seed.Activities))
	for _, spec := range seed.Activities {
		if names[spec.Name] {
			return fmt.Errorf("duplicate activity name %q in seed", spec.Name)
		}
		names[spec.Name] = true

		seen := make(map[string]bool, len(spec.Participants))
		for _, email := range spec.Participants {
			if seen[email] {
				return fmt.Errorf("duplicate participant %q in activity %q", email, spec.Name)
			}
			seen[email] = true
		}
	}
	return nil
}
