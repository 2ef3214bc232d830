// pkg/registry/schema.go
package registry

// ActivitySeed describes the JSON seed document that can replace the
// built-in catalog at startup.
type ActivitySeed struct {
	Version     string         `json:"version"`
	LastUpdated string         `json:"lastUpdated"`
	Activities  []ActivitySpec `json:"activities"`
}

type ActivitySpec struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"maxParticipants"`
	Participants    []string `json:"participants"`
}

// seedSchema is the JSON Schema every seed file must satisfy before the
// catalog is built from it.
var seedSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"activities"},
	"properties": map[string]interface{}{
		"version":     map[string]interface{}{"type": "string"},
		"lastUpdated": map[string]interface{}{"type": "string"},
		"activities": map[string]interface{}{
			"type":     "array",
			"minItems": 1,
			"items": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"name", "description", "schedule", "maxParticipants"},
				"properties": map[string]interface{}{
					"name":            map[string]interface{}{"type": "string", "minLength": 1},
					"description":     map[string]interface{}{"type": "string", "minLength": 1},
					"schedule":        map[string]interface{}{"type": "string", "minLength": 1},
					"maxParticipants": map[string]interface{}{"type": "integer", "minimum": 1},
					"participants": map[string]interface{}{
						"type":  "array",
						"items": map[string]interface{}{"type": "string", "minLength": 1},
					},
				},
			},
		},
	},
}
