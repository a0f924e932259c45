package validators

// documentSchema describes the body of POST/PUT /documents.
const documentSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["title", "content"],
	"additionalProperties": false,
	"properties": {
		"title": {"type": "string", "maxLength": 200},
		"content": {
			"type": "array",
			"maxItems": 4096,
			"items": {"type": "string", "minLength": 1, "maxLength": 64}
		}
	}
}`

const documentSchemaURL = "https://pattern-keeper.local/schemas/document.json"
