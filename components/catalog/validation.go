package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// railSchema constrains rail definitions arriving from manifests. Code and
// title are required; the limit keeps one rail from swallowing the page.
const railSchema = `{
	"type": "object",
	"properties": {
		"code": {"type": "string", "pattern": "^[a-z][a-z0-9_.]*$"},
		"title": {"type": "string", "minLength": 1},
		"category": {"type": "string"},
		"limit": {"type": "integer", "minimum": 1, "maximum": 50},
		"see_all": {"type": "string"}
	},
	"required": ["code", "title", "limit"],
	"additionalProperties": false
}`

var (
	railSchemaOnce     sync.Once
	railSchemaCompiled *jsonschema.Schema
	railSchemaErr      error
)

// ValidateRail checks a rail definition against the manifest schema.
func ValidateRail(def RailDefinition) error {
	if strings.TrimSpace(def.Code) == "" {
		return railCodeError(def.Code)
	}
	schema, err := compiledRailSchema()
	if err != nil {
		return err
	}
	payload, err := normalizeRail(def)
	if err != nil {
		return err
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("catalog: rail %s failed validation: %w", def.Code, err)
	}
	return nil
}

func compiledRailSchema() (*jsonschema.Schema, error) {
	railSchemaOnce.Do(func() {
		railSchemaCompiled, railSchemaErr = jsonschema.CompileString("rail.schema.json", railSchema)
	})
	if railSchemaErr != nil {
		return nil, fmt.Errorf("catalog: compile rail schema: %w", railSchemaErr)
	}
	return railSchemaCompiled, nil
}

// normalizeRail round-trips the definition through JSON so the validator sees
// the same shape a manifest author writes.
func normalizeRail(def RailDefinition) (map[string]any, error) {
	data, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("catalog: marshal rail %s: %w", def.Code, err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("catalog: normalize rail %s: %w", def.Code, err)
	}
	return payload, nil
}
