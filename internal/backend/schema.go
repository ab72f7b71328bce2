package backend

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Payloads are validated before decoding so a drifting backend surfaces as
// a sync error instead of silently corrupting local state.

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

const topicListSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["topicId", "categoryId", "levelId", "order"],
		"properties": {
			"topicId":    {"type": "string", "minLength": 1},
			"categoryId": {"type": "string", "minLength": 1},
			"levelId":    {"type": "string", "minLength": 1},
			"name":       {"type": "string"},
			"order":      {"type": "integer", "minimum": 0}
		}
	}
}`

const categoryListSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["categoryId", "levelId"],
		"properties": {
			"categoryId":  {"type": "string", "minLength": 1},
			"levelId":     {"type": "string", "minLength": 1},
			"description": {"type": "string"}
		}
	}
}`

const questionListSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "topicId", "categoryId", "text", "options", "correctAnswerId"],
		"properties": {
			"id":              {"type": "string", "minLength": 1},
			"topicId":         {"type": "string", "minLength": 1},
			"categoryId":      {"type": "string", "minLength": 1},
			"text":            {"type": "string"},
			"options":         {"type": "array", "items": {"type": "string"}, "minItems": 2},
			"correctAnswerId": {"type": "string", "pattern": "^[0-9]+$"},
			"imageUrl":        {"type": "string"},
			"audioUrl":        {"type": "string"},
			"readingTextId":   {"type": "string"}
		}
	}
}`

const readingListSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["readingTextId", "topicId", "body"],
		"properties": {
			"readingTextId": {"type": "string", "minLength": 1},
			"topicId":       {"type": "string", "minLength": 1},
			"title":         {"type": "string"},
			"body":          {"type": "string"}
		}
	}
}`

const statisticsSchema = `{
	"type": "object",
	"required": ["totalQuizMinutes", "dailyQuizTimes", "completedTopics"],
	"properties": {
		"totalQuizMinutes": {"type": "integer", "minimum": 0},
		"dailyQuizTimes": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["date", "minutes"],
				"properties": {
					"date":              {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
					"minutes":           {"type": "integer", "minimum": 0},
					"questionsAnswered": {"type": "integer", "minimum": 0}
				}
			}
		},
		"completedTopics": {"type": "array", "items": {"type": "string"}}
	}
}`

// validatePayload checks raw JSON against the named schema definition.
func validatePayload(name, definition string, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getCompiledSchema(name, definition)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(name, definition string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	var defParsed any
	if err := json.Unmarshal([]byte(definition), &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
