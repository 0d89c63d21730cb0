package file

import (
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const tasksSchemaURL = "tasks.schema.json"

// tasksSchema describes the on-disk format, a bare array of tasks.
const tasksSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "description", "status"],
    "properties": {
      "id": {"type": "integer", "minimum": -2147483648, "maximum": 2147483647},
      "description": {"type": "string"},
      "status": {"enum": ["HOLD", "PROGRESS", "DONE"]}
    }
  }
}`

var compiledTasksSchema = jsonschema.MustCompileString(tasksSchemaURL, tasksSchema)
