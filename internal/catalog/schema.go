package catalog

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const stringList = `{"type": "array", "items": {"type": "string", "minLength": 1}}`

const tieredSchema = `{
	"type": "object",
	"required": ["essential", "recommended", "advanced"],
	"properties": {
		"essential": ` + stringList + `,
		"recommended": ` + stringList + `,
		"advanced": ` + stringList + `
	}
}`

const skillsSchema = `{
	"type": "object",
	"required": ["careers"],
	"properties": {
		"careers": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["name", "technical", "tools", "soft"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"technical": ` + tieredSchema + `,
					"tools": ` + tieredSchema + `,
					"soft": ` + stringList + `
				}
			}
		}
	}
}`

const courseList = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["title", "platform", "duration", "rating", "outcome"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"platform": {"type": "string"},
			"duration": {"type": "string"},
			"rating": {"type": "number", "minimum": 0, "maximum": 5},
			"outcome": {"type": "string"}
		}
	}
}`

const coursesSchema = `{
	"type": "object",
	"required": ["careers"],
	"properties": {
		"careers": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"beginner": ` + courseList + `,
					"intermediate": ` + courseList + `,
					"advanced": ` + courseList + `
				}
			}
		}
	}
}`

const projectList = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["title", "description", "skills", "duration", "outcomes"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"description": {"type": "string"},
			"skills": ` + stringList + `,
			"duration": {"type": "string"},
			"outcomes": ` + stringList + `
		}
	}
}`

const projectsSchema = `{
	"type": "object",
	"required": ["careers"],
	"properties": {
		"careers": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"beginner": ` + projectList + `,
					"intermediate": ` + projectList + `,
					"advanced": ` + projectList + `
				}
			}
		}
	}
}`

const questionsSchema = `{
	"type": "object",
	"required": ["careers"],
	"properties": {
		"careers": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "questions"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"questions": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["question", "answer"],
							"properties": {
								"question": {"type": "string", "minLength": 1},
								"answer": {"type": "string"},
								"explanation": {"type": "string"}
							}
						}
					}
				}
			}
		}
	}
}`

func validateDocument(name, schema string, doc interface{}) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%s: schema validation: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s: %s", ErrInvalidCatalog, name, strings.Join(msgs, "; "))
}
