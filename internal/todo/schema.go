package todo

// SchemaJSON is the canonical JSON Schema for the store file.
// `todo init` writes it next to the store so that doctor and Validate can
// run full schema validation instead of the minimal fallback checks.
const SchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "todo-cli store",
  "type": "object",
  "required": ["schema_version", "next_id", "tasks"],
  "additionalProperties": false,
  "properties": {
    "schema_version": {
      "const": 1
    },
    "next_id": {
      "type": "integer",
      "minimum": 1
    },
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "done", "priority"],
        "additionalProperties": false,
        "properties": {
          "id": {
            "type": "integer",
            "minimum": 1
          },
          "title": {
            "type": "string",
            "minLength": 1
          },
          "done": {
            "type": "boolean"
          },
          "priority": {
            "enum": ["high", "medium", "low"]
          },
          "due_date": {
            "type": "string",
            "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"
          },
          "created_at": {
            "type": "string",
            "format": "date-time"
          },
          "updated_at": {
            "type": "string",
            "format": "date-time"
          }
        }
      }
    }
  }
}
`
