package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// quizSchema is the JSON Schema every quiz.json must satisfy before the
// structural checks in validate.go run. It covers shape and field types;
// cross-field rules (index ranges, catalog references) are checked in Go.
var quizSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"slug": map[string]any{
			"type":    "string",
			"pattern": "^[a-z0-9]+(-[a-z0-9]+)*$",
		},
		"title":    map[string]any{"type": "string", "minLength": 1},
		"scenario": map[string]any{"type": "string"},
		"learning_objectives": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"skills_catalog": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"key":   map[string]any{"type": "string", "minLength": 1},
					"label": map[string]any{"type": "string", "minLength": 1},
				},
				"required": []any{"key", "label"},
			},
		},
		"scoring": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"deliver_count": map[string]any{"type": "integer", "minimum": 1},
			},
		},
		"improvement_rubric": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string", "minLength": 1},
					"type": map[string]any{"enum": []any{"single", "multi"}},
					"stem": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items":    map[string]any{"type": "string"},
					},
					"answer_index": map[string]any{"type": "integer", "minimum": 0},
					"answer_indices": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "integer", "minimum": 0},
					},
					"select_count": map[string]any{"type": "integer", "minimum": 1},
					"skills": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"key":    map[string]any{"type": "string", "minLength": 1},
								"weight": map[string]any{"type": "number", "minimum": 0},
							},
							"required": []any{"key"},
						},
					},
					"explain": map[string]any{"type": "string"},
					"hints": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required": []any{"id", "type", "stem", "options"},
			},
		},
	},
	"required": []any{"slug", "title", "skills_catalog", "scoring", "questions"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledQuizSchema compiles the quiz schema once and caches it.
func compiledQuizSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(quizSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal quiz schema: %w", err)
			return
		}
		parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			compileErr = fmt.Errorf("parse quiz schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://quiz.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// validateShape checks raw quiz JSON against the schema.
func validateShape(raw []byte) error {
	schema, err := compiledQuizSchema()
	if err != nil {
		return err
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
