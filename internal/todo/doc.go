// Package todo parses, validates, and updates the todo store file.
//
// The store file (~/.todo-cli.json by default) is a single JSON object:
//
//	{
//	  "schema_version": 1,
//	  "next_id": 3,
//	  "tasks": [
//	    {
//	      "id": 1,
//	      "title": "Buy milk",
//	      "done": false,
//	      "priority": "low",
//	      "due_date": "2026-09-01",
//	      "created_at": "2026-08-25T00:00:00Z",
//	      "updated_at": "2026-08-25T00:00:00Z"
//	    }
//	  ]
//	}
//
// # Validation
//
// The package supports two validation modes:
//
// 1. JSON Schema validation (when a schema file is provided):
//   - Full validation against JSON Schema draft-2020-12
//   - Supports: type checking, required fields, enum values, min/max
//
// 2. Minimal fallback validation (when no schema is available):
//   - Structural checks (schema_version, next_id, id uniqueness)
//   - Task field validation (id, title, priority enum, due date format)
//   - No external dependencies required
//
// # Priority Values
//
//   - "high"
//   - "medium" (default)
//   - "low"
//
// # File Format
//
// When writing the store file, the package uses:
//   - 2-space indentation
//   - Trailing newline
//   - Stable key ordering (via JSON marshaling)
//
// Ids are assigned from the persisted next_id counter. If a hand-edited file
// carries tasks with ids at or above the counter, Load heals the counter to
// max(id)+1 so new ids stay unique.
package todo
