// Package schemas holds the JSON Schema documents for the files the CLI reads.
package schemas

import _ "embed"

// JobRequirement is the schema of a job requirement document.
//
//go:embed job_requirement.schema.json
var JobRequirement string
