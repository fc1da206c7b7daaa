package bundle

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

const storySchemaURL = "https://quill.dev/schemas/story.json"

// storySchemaJSON is the JSON Schema every story bundle must satisfy.
const storySchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://quill.dev/schemas/story.json",
  "type": "object",
  "required": ["scenes"],
  "properties": {
    "title": { "type": "string" },
    "root": { "type": "string", "minLength": 1 },
    "scenes": {
      "type": "array",
      "minItems": 1,
      "items": { "$ref": "#/$defs/scene" }
    }
  },
  "additionalProperties": false,
  "$defs": {
    "scene": {
      "type": "object",
      "required": ["id"],
      "properties": {
        "id": { "type": "string", "minLength": 1 },
        "title": { "type": "string" },
        "text": { "type": "string" },
        "image": { "type": "string" },
        "image_seed": { "type": "string" },
        "to": { "type": "string" },
        "choices": {
          "type": "array",
          "items": { "$ref": "#/$defs/choice" }
        },
        "ending": { "type": "boolean" },
        "ending_type": { "type": "string", "enum": ["win", "lose", "neutral"] },
        "message": { "type": "string" }
      },
      "additionalProperties": false
    },
    "choice": {
      "type": "object",
      "properties": {
        "text": { "type": "string" },
        "to": { "type": "string" },
        "target": { "type": "string" }
      },
      "additionalProperties": false
    }
  }
}`

// SchemaError lists every violation found in a story bundle.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	if len(e.Violations) == 1 {
		return "invalid story bundle: " + e.Violations[0]
	}
	return fmt.Sprintf("invalid story bundle: %d errors:\n- %s", len(e.Violations), strings.Join(e.Violations, "\n- "))
}

func compileStorySchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.AssertFormat()

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(storySchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("unmarshal story schema: %w", err)
	}
	if err := c.AddResource(storySchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add story schema resource: %w", err)
	}
	return c.Compile(storySchemaURL)
}

// validate checks a decoded bundle document against the story schema.
func validate(schema *jsonschema.Schema, raw any) error {
	doc, err := toJSONValue(raw)
	if err != nil {
		return fmt.Errorf("failed to serialize bundle: %w", err)
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}

	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &SchemaError{Violations: []string{err.Error()}}
	}
	return &SchemaError{Violations: collectViolations(verr)}
}

// toJSONValue round-trips a value through JSON so numbers become json.Number.
func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(strings.NewReader(string(b)))
}

func collectViolations(verr *jsonschema.ValidationError) []string {
	if len(verr.Causes) == 0 {
		loc := "/"
		if len(verr.InstanceLocation) > 0 {
			loc = "/" + strings.Join(verr.InstanceLocation, "/")
		}
		return []string{fmt.Sprintf("%s: %s", loc, verr.Error())}
	}

	var violations []string
	for _, cause := range verr.Causes {
		violations = append(violations, collectViolations(cause)...)
	}
	return violations
}
